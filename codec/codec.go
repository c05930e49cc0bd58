/*
Package codec round-trips plain data values through JSON text.

It is a thin veneer over encoding/json with one twist on the reading side:
FromJSON binds a behavior set to the parsed data. The type parameter names
the target type, and parsing into it equips the plain fields with whatever
methods that type declares:

    r, err := codec.FromJSON[geom.Rect](`{"width":4,"height":5}`)
    r.Area()     // 20

*/
package codec

import "encoding/json"

// ToJSON returns the JSON text for v. Keys of map values render in sorted
// order, so equal values always serialize to equal text.
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FromJSON parses text into a value of type T, attaching T's method set to
// the parsed data. Parse failures surface as encoding/json reports them,
// unwrapped.
func FromJSON[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		var none T
		return none, err
	}
	return v, nil
}
