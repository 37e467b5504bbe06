package registration

import "fmt"

// Variant is a form rendering variant.
type Variant string

// Rendering variants. Both use the same rules.
const (
	VariantCompact Variant = "compact"
	VariantWide    Variant = "wide"
)

// Field describes how a form field is presented.
type Field struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Hint        string `json:"hint"`
}

var layouts = map[Variant][]Field{
	VariantCompact: {
		{Name: FieldEmail, Type: "email", Placeholder: "E-mail", Hint: "Please enter a valid email address"},
		{Name: FieldPassword, Type: "password", Placeholder: "Password", Hint: "Password must contain one uppercase letter, one lowercase letter, one number"},
		{Name: FieldPassword2, Type: "password", Placeholder: "Confirm password", Hint: "Please enter your valid password"},
		{Name: FieldUsername, Type: "text", Placeholder: "First name", Hint: "Please enter your name"},
	},
	VariantWide: {
		{Name: FieldUsername, Type: "text", Placeholder: "Name", Hint: "Please enter your name"},
		{Name: FieldEmail, Type: "email", Placeholder: "E-mail", Hint: "Please enter a valid email address"},
		{Name: FieldPassword, Type: "password", Placeholder: "Password", Hint: "Password must contain at least 6 and up to 12 characters"},
		{Name: FieldPassword2, Type: "password", Placeholder: "Confirm password", Hint: "Please enter your valid password"},
	},
}

// Layout returns the fields of the variant in display order.
func Layout(v Variant) ([]Field, error) {
	fields, ok := layouts[v]
	if !ok {
		return nil, fmt.Errorf("unknown form variant %q", v)
	}

	out := make([]Field, len(fields))
	copy(out, fields)

	return out, nil
}
