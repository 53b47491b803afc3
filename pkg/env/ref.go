// Package env provides the identity and configuration of a decoder
// deployment.
package env

// DecoderRef is a reference to a running decoder.
type DecoderRef struct {
	// Type is the decoder type, usually the link it listens to.
	Type string `yaml:"type"`
	// ID is unique ID of the decoder.
	ID string `yaml:"id"`
}

// Name retrieves the name from ref.
func (r DecoderRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates DecoderRef is valid.
func (r DecoderRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// DecoderMeta provides metadata for a decoder.
type DecoderMeta struct {
	Description string            `json:"description,omitempty" yaml:"description"`
	Device      string            `json:"device,omitempty" yaml:"-"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels"`
}

// DecoderInfo provides information of a decoder.
type DecoderInfo struct {
	Ref  DecoderRef  `yaml:",inline"`
	Meta DecoderMeta `yaml:",inline"`
}
