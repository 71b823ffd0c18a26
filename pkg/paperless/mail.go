package paperless

// MailAccount is a configured mailbox the server fetches documents from.
type MailAccount struct {
	ID            int64  `json:"id"                        yaml:"id"`
	Name          string `json:"name"                      yaml:"name"`
	ImapServer    string `json:"imap_server"               yaml:"imap_server"`
	ImapPort      *int64 `json:"imap_port"                 yaml:"imap_port"`
	ImapSecurity  int64  `json:"imap_security"             yaml:"imap_security"`
	Username      string `json:"username"                  yaml:"username"`
	IsToken       bool   `json:"is_token"                  yaml:"is_token"`
	Owner         *int64 `json:"owner"                     yaml:"owner"`
	UserCanChange *bool  `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
}

// MailRule is one processing rule bound to a mail account.
type MailRule struct {
	ID                    int64   `json:"id"                        yaml:"id"`
	Name                  string  `json:"name"                      yaml:"name"`
	Account               int64   `json:"account"                   yaml:"account"`
	Folder                string  `json:"folder"                    yaml:"folder"`
	FilterFrom            *string `json:"filter_from"               yaml:"filter_from"`
	FilterTo              *string `json:"filter_to"                 yaml:"filter_to"`
	FilterSubject         *string `json:"filter_subject"            yaml:"filter_subject"`
	FilterBody            *string `json:"filter_body"               yaml:"filter_body"`
	FilterAttachmentName  *string `json:"filter_attachment_filename" yaml:"filter_attachment_filename"`
	MaximumAge            int64   `json:"maximum_age"               yaml:"maximum_age"`
	Action                int64   `json:"action"                    yaml:"action"`
	ActionParameter       *string `json:"action_parameter"          yaml:"action_parameter"`
	AssignTitleFrom       int64   `json:"assign_title_from"         yaml:"assign_title_from"`
	AssignTags            []int64 `json:"assign_tags"               yaml:"assign_tags"`
	AssignCorrespondent   *int64  `json:"assign_correspondent"      yaml:"assign_correspondent"`
	AssignDocumentType    *int64  `json:"assign_document_type"      yaml:"assign_document_type"`
	Order                 int64   `json:"order"                     yaml:"order"`
	AttachmentType        int64   `json:"attachment_type"           yaml:"attachment_type"`
	Owner                 *int64  `json:"owner"                     yaml:"owner"`
	UserCanChange         *bool   `json:"user_can_change,omitempty" yaml:"user_can_change,omitempty"`
}

// MailAccountsClient accesses mail accounts. The API exposes them read-only
// to tokens without admin scope, so only reads are offered.
type MailAccountsClient interface {
	Getter[MailAccount]
	Lister[MailAccount]
}

// MailRulesClient accesses mail rules.
type MailRulesClient interface {
	Getter[MailRule]
	Lister[MailRule]
}
