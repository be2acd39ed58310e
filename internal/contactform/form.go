package contactform

import (
	"fmt"
	"sync"
)

// Field mirrors one form input and its floating-label state
type Field struct {
	Name     string
	Value    string
	Focused  bool
	HasValue bool
}

// Button is the submit control
type Button struct {
	Label    string
	Disabled bool
}

// Form owns the field and submit-control state. All methods are safe for
// concurrent use.
type Form struct {
	mu     sync.Mutex
	fields []*Field
	button Button
}

// NewForm creates a form with the given named fields in order
func NewForm(submitLabel string, names ...string) *Form {
	fields := make([]*Field, len(names))
	for i, name := range names {
		fields[i] = &Field{Name: name}
	}
	return &Form{
		fields: fields,
		button: Button{Label: submitLabel},
	}
}

// NewContactForm creates the name/email/message form of the portfolio page
func NewContactForm() *Form {
	return NewForm("Send Message", "name", "email", "message")
}

func (f *Form) lookup(name string) (*Field, error) {
	for _, field := range f.fields {
		if field.Name == name {
			return field, nil
		}
	}
	return nil, fmt.Errorf("contactform: unknown field %q", name)
}

// Input sets a field's value; has-value follows the new value
func (f *Form) Input(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, err := f.lookup(name)
	if err != nil {
		return err
	}
	field.Value = value
	field.HasValue = value != ""
	return nil
}

func (f *Form) Focus(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, err := f.lookup(name)
	if err != nil {
		return err
	}
	field.Focused = true
	return nil
}

func (f *Form) Blur(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, err := f.lookup(name)
	if err != nil {
		return err
	}
	field.Focused = false
	field.HasValue = field.Value != ""
	return nil
}

// Field returns a copy of the named field
func (f *Form) Field(name string) (Field, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	field, err := f.lookup(name)
	if err != nil {
		return Field{}, false
	}
	return *field, true
}

// Fields returns a copy of every field in order
func (f *Form) Fields() []Field {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Field, len(f.fields))
	for i, field := range f.fields {
		out[i] = *field
	}
	return out
}

// Values serializes every named field into a flat map
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.Name] = field.Value
	}
	return values
}

// Reset clears every value and its has-value state
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, field := range f.fields {
		field.Value = ""
		field.HasValue = false
	}
}

func (f *Form) Button() Button {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.button
}

// beginSubmit disables the control and swaps in the pending label. It fails
// when the control is already disabled.
func (f *Form) beginSubmit(pendingLabel string) (original string, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.button.Disabled {
		return "", false
	}
	original = f.button.Label
	f.button = Button{Label: pendingLabel, Disabled: true}
	return original, true
}

func (f *Form) endSubmit(original string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.button = Button{Label: original}
}
