package implementation

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func decodeSkills(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return []string{}
	}
	return skills
}
