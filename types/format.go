package types

// Format is the content-format negotiation token attached to every query.
// It only changes how the response is framed, never which records are returned.
type Format string

const (
	FormatArrow      Format = "arrow"
	FormatJson       Format = "json"
	FormatJsonStream Format = "json_stream"
)

func (f Format) String() string {
	return string(f)
}
