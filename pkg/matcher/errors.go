package matcher

import (
	"fmt"
	"strings"
)

// UnconsumedFieldsKind labels UnconsumedFieldsError in the error metrics.
const UnconsumedFieldsKind = "unconsumed_fields"

// UnconsumedFieldsError is returned when match fields are left over after
// every lookup ran. No lookup of the matcher can match on them, so the
// rule would silently match more than asked for.
type UnconsumedFieldsError struct {
	// Pass is "mask" or "value".
	Pass   string
	Fields []string
}

func (e UnconsumedFieldsError) Error() string {
	return fmt.Sprintf("%s fields not consumed by any lookup: %s", e.Pass, strings.Join(e.Fields, ", "))
}

func (UnconsumedFieldsError) Is(target error) bool {
	switch target.(type) {
	case UnconsumedFieldsError, *UnconsumedFieldsError:
		return true
	}
	return false
}
