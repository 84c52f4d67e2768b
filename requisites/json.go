package requisites

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// The JSON forms below are the ones drexel.json has always used:
//
//	Course -> {"codeName": "CS-171", "minimum grade": "C-"}
//	AllOf  -> [...]
//	OneOf  -> {"one of": [...]}
//	Raw    -> "text"

type courseJSON struct {
	Code         string `json:"codeName"`
	MinimumGrade string `json:"minimum grade"`
}

type oneOfJSON struct {
	OneOf []Expression `json:"one of"`
}

func nonNil(expressions []Expression) []Expression {
	if expressions == nil {
		return []Expression{}
	}
	return expressions
}

// marshal leaves HTML escaping to the caller's encoder. json.Marshal would
// escape "&" before Encode gets to decide.
func marshal(v any) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

func (c Course) MarshalJSON() ([]byte, error) {
	grade := c.MinimumGrade
	if grade == "" {
		grade = AnyGrade
	}
	return marshal(courseJSON{Code: c.Code, MinimumGrade: grade})
}

func (a AllOf) MarshalJSON() ([]byte, error) {
	return marshal(nonNil(a))
}

func (o OneOf) MarshalJSON() ([]byte, error) {
	return marshal(oneOfJSON{OneOf: nonNil(o)})
}

func (r Raw) MarshalJSON() ([]byte, error) {
	return marshal(string(r))
}

func (l List) MarshalJSON() ([]byte, error) {
	return marshal(nonNil(l))
}

func (l *List) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = List{}
		return nil
	}
	members, err := decodeMembers(data)
	if err != nil {
		return err
	}
	*l = List(members)
	return nil
}

func decodeMembers(data []byte) ([]Expression, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	members := make([]Expression, 0, len(raws))
	for _, raw := range raws {
		member, err := decodeExpression(raw)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func decodeExpression(data []byte) (Expression, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty prerequisite expression")
	}

	switch data[0] {
	case '[':
		members, err := decodeMembers(data)
		if err != nil {
			return nil, err
		}
		return AllOf(members), nil
	case '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil, err
		}
		return Raw(text), nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, err
		}
		if oneOf, ok := fields["one of"]; ok {
			members, err := decodeMembers(oneOf)
			if err != nil {
				return nil, err
			}
			return OneOf(members), nil
		}

		var course courseJSON
		if err := json.Unmarshal(data, &course); err != nil {
			return nil, err
		}
		if course.Code == "" {
			return nil, fmt.Errorf("prerequisite object has neither \"one of\" nor \"codeName\": %s", data)
		}
		if course.MinimumGrade == "" {
			course.MinimumGrade = AnyGrade
		}
		return Course{Code: course.Code, MinimumGrade: course.MinimumGrade}, nil
	default:
		return nil, fmt.Errorf("unexpected prerequisite expression: %s", data)
	}
}
