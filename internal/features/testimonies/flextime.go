package testimonies

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexTime is a timestamp that is written as a native BSON datetime but
// decodes documents from older insert paths that stored client-formatted
// ISO strings. Sorting therefore happens in-process on the decoded value
// instead of relying on the store's ordering of mixed types.
type FlexTime time.Time

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (ft FlexTime) Time() time.Time {
	return time.Time(ft)
}

func (ft FlexTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(time.Time(ft))
}

func (ft *FlexTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.DateTime:
		var parsed time.Time
		if err := bson.UnmarshalValue(t, data, &parsed); err != nil {
			return err
		}
		*ft = FlexTime(parsed)
		return nil
	case bsontype.String:
		var s string
		if err := bson.UnmarshalValue(t, data, &s); err != nil {
			return err
		}
		for _, layout := range stringLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				*ft = FlexTime(parsed)
				return nil
			}
		}
		return fmt.Errorf("cannot parse %q as a timestamp", s)
	case bsontype.Null:
		*ft = FlexTime{}
		return nil
	default:
		return fmt.Errorf("cannot decode BSON type %s into a timestamp", t)
	}
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(ft))
}

func (ft *FlexTime) UnmarshalJSON(data []byte) error {
	var parsed time.Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		return err
	}
	*ft = FlexTime(parsed)
	return nil
}
