package enums

// VisualKind tells the storefront how to draw a cart line thumbnail.
type VisualKind string

const (
	VisualKindImage       VisualKind = "image"
	VisualKindStyle       VisualKind = "style"
	VisualKindPlaceholder VisualKind = "placeholder"
)

// String implements fmt.Stringer.
func (v VisualKind) String() string {
	return string(v)
}
