package paperless

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// CustomFieldDataType is the declared type of a custom field.
type CustomFieldDataType string

const (
	CustomFieldString       CustomFieldDataType = "string"
	CustomFieldURL          CustomFieldDataType = "url"
	CustomFieldDate         CustomFieldDataType = "date"
	CustomFieldBoolean      CustomFieldDataType = "boolean"
	CustomFieldInteger      CustomFieldDataType = "integer"
	CustomFieldFloat        CustomFieldDataType = "float"
	CustomFieldMonetary     CustomFieldDataType = "monetary"
	CustomFieldDocumentLink CustomFieldDataType = "documentlink"
	CustomFieldSelect       CustomFieldDataType = "select"

	// CustomFieldUnknown absorbs data types this client does not know about.
	CustomFieldUnknown CustomFieldDataType = "unknown"
)

func (t *CustomFieldDataType) UnmarshalJSON(data []byte) error {
	var value string

	if err := json.Unmarshal(data, &value); err != nil {
		*t = CustomFieldUnknown

		return nil
	}

	switch CustomFieldDataType(value) {
	case CustomFieldString, CustomFieldURL, CustomFieldDate, CustomFieldBoolean,
		CustomFieldInteger, CustomFieldFloat, CustomFieldMonetary,
		CustomFieldDocumentLink, CustomFieldSelect:
		*t = CustomFieldDataType(value)
	default:
		*t = CustomFieldUnknown
	}

	return nil
}

// SelectOption is one choice of a select-typed custom field.
type SelectOption struct {
	ID    string `json:"id"    yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// CustomFieldExtraData carries per-type configuration of a field definition.
type CustomFieldExtraData struct {
	SelectOptions   []SelectOption `json:"select_options,omitempty"   yaml:"select_options,omitempty"`
	DefaultCurrency *string        `json:"default_currency,omitempty" yaml:"default_currency,omitempty"`
}

// CustomField is a field definition.
type CustomField struct {
	ID            int64                 `json:"id"                       yaml:"id"`
	Name          string                `json:"name"                     yaml:"name"`
	DataType      CustomFieldDataType   `json:"data_type"                yaml:"data_type"`
	ExtraData     *CustomFieldExtraData `json:"extra_data,omitempty"     yaml:"extra_data,omitempty"`
	DocumentCount *int64                `json:"document_count,omitempty" yaml:"document_count,omitempty"`
}

// CustomFieldCreateRequest creates a field definition.
type CustomFieldCreateRequest struct {
	Name      string                `json:"name"`
	DataType  CustomFieldDataType   `json:"data_type"`
	ExtraData *CustomFieldExtraData `json:"extra_data,omitempty"`
}

// Validate checks the required fields.
func (r *CustomFieldCreateRequest) Validate() error {
	var missing []string

	if r.Name == "" {
		missing = append(missing, "name")
	}

	if r.DataType == "" {
		missing = append(missing, "data_type")
	}

	if len(missing) > 0 {
		return &DraftFieldRequiredError{Fields: missing}
	}

	return nil
}

// CustomFieldValue is the raw field/value pair as it appears on a document.
// Value keeps whatever JSON shape the server sent.
type CustomFieldValue struct {
	Field int64 `json:"field" yaml:"field"`
	Value any   `json:"value" yaml:"value"`
}

// CustomFieldTypedValue is a decoded custom-field value. The concrete type
// follows the field definition's data type; values that cannot be decoded
// come back as UnknownValue with the raw payload preserved.
type CustomFieldTypedValue interface {
	FieldID() int64
	DataType() CustomFieldDataType
}

type fieldRef struct {
	Field int64
}

func (f fieldRef) FieldID() int64 { return f.Field }

// StringValue is a string or url field value.
type StringValue struct {
	fieldRef
	Type  CustomFieldDataType
	Value string
}

func (v StringValue) DataType() CustomFieldDataType { return v.Type }

// BooleanValue is a boolean field value.
type BooleanValue struct {
	fieldRef
	Value bool
}

func (v BooleanValue) DataType() CustomFieldDataType { return CustomFieldBoolean }

// IntegerValue is an integer field value.
type IntegerValue struct {
	fieldRef
	Value int64
}

func (v IntegerValue) DataType() CustomFieldDataType { return CustomFieldInteger }

// FloatValue is a float field value.
type FloatValue struct {
	fieldRef
	Value float64
}

func (v FloatValue) DataType() CustomFieldDataType { return CustomFieldFloat }

// MonetaryValue is a monetary field value. The server renders these as a
// string of an ISO currency code followed by a decimal amount, e.g.
// "EUR123.40"; older servers send a bare number.
type MonetaryValue struct {
	fieldRef
	Currency string
	Amount   float64

	// Raw is the unparsed server rendering.
	Raw string
}

func (v MonetaryValue) DataType() CustomFieldDataType { return CustomFieldMonetary }

// DateValue is a date field value.
type DateValue struct {
	fieldRef
	Value Date
}

func (v DateValue) DataType() CustomFieldDataType { return CustomFieldDate }

// DocumentLinkValue is a documentlink field value.
type DocumentLinkValue struct {
	fieldRef
	Documents []int64
}

func (v DocumentLinkValue) DataType() CustomFieldDataType { return CustomFieldDocumentLink }

// SelectValue is a select field value. Label is resolved from the field
// definition's options; it stays empty when the option id is not listed.
type SelectValue struct {
	fieldRef
	OptionID string
	Label    string
}

func (v SelectValue) DataType() CustomFieldDataType { return CustomFieldSelect }

// UnknownValue preserves a value this client could not decode.
type UnknownValue struct {
	fieldRef
	Raw any
}

func (v UnknownValue) DataType() CustomFieldDataType { return CustomFieldUnknown }

// ResolveCustomFieldValue decodes a raw value against its field definition.
// A nil definition, a nil value, or a shape mismatch yields UnknownValue;
// decoding never fails.
func ResolveCustomFieldValue(def *CustomField, raw CustomFieldValue) CustomFieldTypedValue {
	ref := fieldRef{Field: raw.Field}

	if def == nil || raw.Value == nil {
		return UnknownValue{fieldRef: ref, Raw: raw.Value}
	}

	switch def.DataType {
	case CustomFieldString, CustomFieldURL:
		if s, ok := raw.Value.(string); ok {
			return StringValue{fieldRef: ref, Type: def.DataType, Value: s}
		}
	case CustomFieldBoolean:
		if b, ok := raw.Value.(bool); ok {
			return BooleanValue{fieldRef: ref, Value: b}
		}
	case CustomFieldInteger:
		if f, ok := raw.Value.(float64); ok {
			return IntegerValue{fieldRef: ref, Value: int64(f)}
		}
	case CustomFieldFloat:
		if f, ok := raw.Value.(float64); ok {
			return FloatValue{fieldRef: ref, Value: f}
		}
	case CustomFieldMonetary:
		if v, ok := decodeMonetary(ref, raw.Value); ok {
			return v
		}
	case CustomFieldDate:
		if s, ok := raw.Value.(string); ok {
			var d Date
			if err := d.UnmarshalJSON([]byte(strconv.Quote(s))); err == nil {
				return DateValue{fieldRef: ref, Value: d}
			}
		}
	case CustomFieldDocumentLink:
		if list, ok := raw.Value.([]any); ok {
			ids := make([]int64, 0, len(list))

			for _, item := range list {
				f, ok := item.(float64)
				if !ok {
					return UnknownValue{fieldRef: ref, Raw: raw.Value}
				}

				ids = append(ids, int64(f))
			}

			return DocumentLinkValue{fieldRef: ref, Documents: ids}
		}
	case CustomFieldSelect:
		if id, ok := raw.Value.(string); ok {
			value := SelectValue{fieldRef: ref, OptionID: id}

			if def.ExtraData != nil {
				for _, option := range def.ExtraData.SelectOptions {
					if option.ID == id {
						value.Label = option.Label

						break
					}
				}
			}

			return value
		}
	}

	return UnknownValue{fieldRef: ref, Raw: raw.Value}
}

func decodeMonetary(ref fieldRef, value any) (MonetaryValue, bool) {
	switch v := value.(type) {
	case float64:
		return MonetaryValue{fieldRef: ref, Amount: v, Raw: strconv.FormatFloat(v, 'f', -1, 64)}, true
	case string:
		currency := ""
		amountPart := v

		if len(v) >= 3 && isAlpha(v[:3]) {
			currency = strings.ToUpper(v[:3])
			amountPart = v[3:]
		}

		amount, err := strconv.ParseFloat(amountPart, 64)
		if err != nil {
			return MonetaryValue{}, false
		}

		return MonetaryValue{fieldRef: ref, Currency: currency, Amount: amount, Raw: v}, true
	}

	return MonetaryValue{}, false
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}

	return true
}

// CustomFieldsClient accesses the custom field definitions.
type CustomFieldsClient interface {
	Getter[CustomField]
	Lister[CustomField]
	Creator[CustomField, CustomFieldCreateRequest]
	Updater[CustomField]
	Deleter

	// Definitions returns every field definition keyed by id, served from the
	// client's cache when warm.
	Definitions(ctx context.Context) (map[int64]CustomField, error)
}
