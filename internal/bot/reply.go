package bot

import (
	"fmt"

	"github.com/joinforge-labs/joinforge/pkg/sqlgen"
)

// replyFor turns raw message text into the reply body. Both the generated
// SQL and validation errors are rendered inside a fenced sql block; the
// chat layer displays whatever comes back verbatim.
func replyFor(text string) string {
	body, err := sqlgen.Generate(text)
	if err != nil {
		body = "Error: " + err.Error()
	}
	// The fence closes right after the body, with no extra newline.
	return fmt.Sprintf("Generated SQL query:\n```sql\n%s```", body)
}
