package answers

// BindingKind classifies how a fragment's options render.
type BindingKind int

const (
	// BindingNone means the fragment has no options and renders nothing.
	BindingNone BindingKind = iota

	// BindingGap means the fragment renders as a graded cloze gap.
	BindingGap

	// BindingLiteral means the fragment renders as literal text.
	BindingLiteral
)

func (k BindingKind) String() string {
	switch k {
	case BindingGap:
		return "gap"
	case BindingLiteral:
		return "literal"
	default:
		return "none"
	}
}

// Binding is the rendering decision for one fragment.
type Binding struct {
	Kind BindingKind

	// Literal is the text emitted for BindingLiteral.
	Literal string

	// Options holds every option of the fragment for BindingGap.
	Options []Option

	// Mixed is set when a later option disagrees with the first one about
	// being a question. The first option still decides the kind.
	Mixed bool
}

// Bind classifies opts. The first option's IsQuestion decides the kind of
// the whole list.
func Bind(opts []Option) Binding {
	if len(opts) == 0 {
		return Binding{Kind: BindingNone}
	}

	first := opts[0]
	mixed := false
	for _, o := range opts[1:] {
		if o.IsQuestion != first.IsQuestion {
			mixed = true
			break
		}
	}

	if !first.IsQuestion {
		return Binding{Kind: BindingLiteral, Literal: first.Answer, Mixed: mixed}
	}
	return Binding{Kind: BindingGap, Options: opts, Mixed: mixed}
}

// Binding classifies the options of fragment frag.
func (b *Bank) Binding(frag int) (Binding, error) {
	opts, err := b.Options(frag)
	if err != nil {
		return Binding{}, err
	}
	return Bind(opts), nil
}
