package model

// FileReference is an opaque pointer to an externally stored artifact such as
// a resume or a job description. The core never interprets the contents
// behind the URL.
type FileReference struct {
	Name string `gorm:"type:text" json:"name"`
	URL  string `gorm:"type:text" json:"url"`
}

// Empty reports whether the reference points at nothing.
func (f FileReference) Empty() bool {
	return f.Name == "" && f.URL == ""
}
