package encode

import "github.com/signadot/rvalue/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeLabels controls the "(integer)" and "(nil)" labels of the text
// format. They are on by default.
func EncodeLabels(v bool) EncodeOption {
	return func(es *EncState) { es.noLabels = !v }
}
