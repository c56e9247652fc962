package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		wantOut string
		wantErr string
	}{
		{
			name:    "query argument",
			args:    []string{"customers - c : name age\norders - o : order_date : c.id = o.customer_id"},
			wantOut: "SELECT c.name, c.age, o.order_date FROM customers AS c\nJOIN orders AS o ON c.id = o.customer_id;\n",
		},
		{
			name:    "query from stdin",
			stdin:   "products : : ",
			wantOut: "SELECT products.* FROM products;\n",
		},
		{
			name:    "reserved table name",
			args:    []string{"SELECT : id"},
			wantErr: `table name "SELECT" is invalid or reserved`,
		},
		{
			name:    "missing join condition",
			args:    []string{"a : x\nb : y"},
			wantErr: "every table after the first needs a join condition",
		},
		{
			name:    "empty stdin",
			stdin:   "  \n ",
			wantErr: "no query given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewGenerateCommand()
			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error = %q, want substring %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out.String() != tt.wantOut {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
		})
	}
}

func TestGenerateCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.jf")
	query := "customers - c : name\norders - o : total : c.id = o.customer_id\n"
	if err := os.WriteFile(path, []byte(query), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := NewGenerateCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--file", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "SELECT c.name, o.total FROM customers AS c\nJOIN orders AS o ON c.id = o.customer_id;\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestGenerateCommandRejectsArgAndFile(t *testing.T) {
	cmd := NewGenerateCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"a : x", "--file", "query.jf"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "not both") {
		t.Errorf("expected arg/file conflict error, got %v", err)
	}
}
