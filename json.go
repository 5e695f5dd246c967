package fluent

import (
	"encoding/json"
)

// encodeJSON renders v as JSON text, indented by four spaces when pretty.
func encodeJSON(v json.Marshaler, pretty bool) (Text, error) {
	var (
		out []byte
		err error
	)
	if pretty {
		out, err = json.MarshalIndent(v, "", "    ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return Text{}, fail("ToJSON", ErrInvalidArgument, "%v", err)
	}
	return NewText(string(out)), nil
}
