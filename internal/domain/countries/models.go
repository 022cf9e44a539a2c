package countries

// Entity is the collection key and endpoint name for countries.
const Entity = "countries"

// Country is one entry of the /countries response.
// Code and Flag are null for pseudo-countries such as "World".
type Country struct {
	Name string  `json:"name" yaml:"name"`
	Code *string `json:"code" yaml:"code"`
	Flag *string `json:"flag" yaml:"flag"`
}

// Optional returns a pointer to s for the nullable fields.
func Optional(s string) *string {
	return &s
}

// RecordID returns the country code, which is how the provider addresses countries.
// A null code yields "".
func (c Country) RecordID() string {
	if c.Code == nil {
		return ""
	}
	return *c.Code
}

// RecordName returns the country name.
func (c Country) RecordName() string {
	return c.Name
}
