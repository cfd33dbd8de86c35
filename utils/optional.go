package utils

import "encoding/json"

// OptionalString distinguishes the three image-update cases in a JSON body:
// absent key (Present=false, leave stored value alone), explicit null
// (Present=true, Value=nil, clear), and a string (Present=true, set).
type OptionalString struct {
	Present bool
	Value   *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Present = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
