package schema

// Property is one name/value pair destined for a generated config file.
// Slices of Property keep their order through generation.
type Property struct {
	Name  string
	Value string
}
