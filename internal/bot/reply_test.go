package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyForSQL(t *testing.T) {
	reply := replyFor("customers - c : name age\norders - o : order_date : c.id = o.customer_id")

	assert.True(t, strings.HasPrefix(reply, "Generated SQL query:\n```sql\n"))
	// The closing fence follows the statement directly
	assert.True(t, strings.HasSuffix(reply, ";```"))
	assert.Contains(t, reply, "SELECT c.name, c.age, o.order_date FROM customers AS c\nJOIN orders AS o ON c.id = o.customer_id;")
}

func TestReplyForError(t *testing.T) {
	reply := replyFor("SELECT : id")

	assert.Contains(t, reply, "```sql\nError: ")
	assert.Contains(t, reply, `"SELECT"`)
}

func TestUsageMessage(t *testing.T) {
	assert.Contains(t, usageMessage, "customers - c : name age")
	assert.Contains(t, usageMessage, "join condition")
}
