package paperless

import "time"

// StorageStatus reports disk usage of the media volume.
type StorageStatus struct {
	Total     int64 `json:"total"     yaml:"total"`
	Available int64 `json:"available" yaml:"available"`
}

// DatabaseStatus reports the state of the backing database.
type DatabaseStatus struct {
	Type            string          `json:"type"             yaml:"type"`
	URL             string          `json:"url"              yaml:"url"`
	Status          string          `json:"status"           yaml:"status"`
	Error           *string         `json:"error"            yaml:"error"`
	MigrationStatus MigrationStatus `json:"migration_status" yaml:"migration_status"`
}

// MigrationStatus reports applied and pending database migrations.
type MigrationStatus struct {
	LatestMigration     string   `json:"latest_migration"     yaml:"latest_migration"`
	UnappliedMigrations []string `json:"unapplied_migrations" yaml:"unapplied_migrations"`
}

// TaskQueueStatus reports the state of the task broker and workers.
type TaskQueueStatus struct {
	RedisURL          string     `json:"redis_url"           yaml:"redis_url"`
	RedisStatus       string     `json:"redis_status"        yaml:"redis_status"`
	RedisError        *string    `json:"redis_error"         yaml:"redis_error"`
	CeleryStatus      string     `json:"celery_status"       yaml:"celery_status"`
	IndexStatus       string     `json:"index_status"        yaml:"index_status"`
	IndexLastModified *time.Time `json:"index_last_modified" yaml:"index_last_modified"`
	IndexError        *string    `json:"index_error"         yaml:"index_error"`
	ClassifierStatus  string     `json:"classifier_status"   yaml:"classifier_status"`
	ClassifierError   *string    `json:"classifier_error"    yaml:"classifier_error"`
}

// SystemStatus is the health report of the whole installation.
type SystemStatus struct {
	PNGXVersion string          `json:"pngx_version" yaml:"pngx_version"`
	ServerOS    string          `json:"server_os"    yaml:"server_os"`
	InstallType string          `json:"install_type" yaml:"install_type"`
	Storage     StorageStatus   `json:"storage"      yaml:"storage"`
	Database    DatabaseStatus  `json:"database"     yaml:"database"`
	Tasks       TaskQueueStatus `json:"tasks"        yaml:"tasks"`
}

// FileTypeCount is the document count of one mime type.
type FileTypeCount struct {
	MimeType      string `json:"mime_type"       yaml:"mime_type"`
	MimeTypeCount int64  `json:"mime_type_count" yaml:"mime_type_count"`
}

// Statistics is the aggregate document statistics endpoint.
type Statistics struct {
	DocumentsTotal         int64           `json:"documents_total"           yaml:"documents_total"`
	DocumentsInbox         *int64          `json:"documents_inbox"           yaml:"documents_inbox"`
	InboxTag               *int64          `json:"inbox_tag"                 yaml:"inbox_tag"`
	InboxTags              []int64         `json:"inbox_tags"                yaml:"inbox_tags"`
	DocumentFileTypeCounts []FileTypeCount `json:"document_file_type_counts" yaml:"document_file_type_counts"`
	CharacterCount         int64           `json:"character_count"           yaml:"character_count"`
	TagCount               int64           `json:"tag_count"                 yaml:"tag_count"`
	CorrespondentCount     int64           `json:"correspondent_count"       yaml:"correspondent_count"`
	DocumentTypeCount      int64           `json:"document_type_count"       yaml:"document_type_count"`
	StoragePathCount       int64           `json:"storage_path_count"        yaml:"storage_path_count"`
	CurrentASN             *int64          `json:"current_asn"               yaml:"current_asn"`
}

// RemoteVersion reports the latest released server version.
type RemoteVersion struct {
	Version         string `json:"version"          yaml:"version"`
	UpdateAvailable bool   `json:"update_available" yaml:"update_available"`
}

// AppConfig is the server-side application configuration singleton.
type AppConfig struct {
	ID                      int64    `json:"id"                        yaml:"id"`
	UserArgs                any      `json:"user_args"                 yaml:"user_args"`
	OutputType              *string  `json:"output_type"               yaml:"output_type"`
	Pages                   *int64   `json:"pages"                     yaml:"pages"`
	Language                *string  `json:"language"                  yaml:"language"`
	Mode                    *string  `json:"mode"                      yaml:"mode"`
	SkipArchiveFile         *string  `json:"skip_archive_file"         yaml:"skip_archive_file"`
	ImageDPI                *int64   `json:"image_dpi"                 yaml:"image_dpi"`
	UnpaperClean            *string  `json:"unpaper_clean"             yaml:"unpaper_clean"`
	Deskew                  *bool    `json:"deskew"                    yaml:"deskew"`
	RotatePages             *bool    `json:"rotate_pages"              yaml:"rotate_pages"`
	RotatePagesThreshold    *float64 `json:"rotate_pages_threshold"    yaml:"rotate_pages_threshold"`
	MaxImagePixels          *float64 `json:"max_image_pixels"          yaml:"max_image_pixels"`
	ColorConversionStrategy *string  `json:"color_conversion_strategy" yaml:"color_conversion_strategy"`
	AppTitle                *string  `json:"app_title"                 yaml:"app_title"`
	AppLogo                 *string  `json:"app_logo"                  yaml:"app_logo"`
}
