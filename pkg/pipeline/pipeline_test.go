package pipeline

import (
	"testing"

	"github.com/matzehuels/pubdate/pkg/deps/yarn"
	"github.com/matzehuels/pubdate/pkg/errors"
	"github.com/matzehuels/pubdate/pkg/integrations/npm"
	"github.com/matzehuels/pubdate/pkg/report"
)

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero Options should validate: %v", err)
	}
	if opts.Yarn != yarn.DefaultBinary {
		t.Errorf("Yarn = %q, want %q", opts.Yarn, yarn.DefaultBinary)
	}
	if opts.Registry != npm.DefaultURL {
		t.Errorf("Registry = %q, want %q", opts.Registry, npm.DefaultURL)
	}
	if opts.Format != report.FormatText {
		t.Errorf("Format = %q, want %q", opts.Format, report.FormatText)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want errors.Code
	}{
		{"unknown format", Options{Format: "svg"}, errors.ErrCodeInvalidFormat},
		{"file and dir", Options{FromFile: "list.txt", Dir: "web"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOptionsLister(t *testing.T) {
	if _, ok := (Options{FromFile: "list.txt"}).Lister().(yarn.File); !ok {
		t.Error("FromFile should select yarn.File")
	}

	cmd, ok := (Options{Dir: "web", Yarn: "/opt/yarn"}).Lister().(*yarn.Command)
	if !ok {
		t.Fatal("default lister should be *yarn.Command")
	}
	if cmd.Dir != "web" || cmd.Binary != "/opt/yarn" {
		t.Errorf("Command = %+v", cmd)
	}
}

func TestOptionsResolver(t *testing.T) {
	c, ok := (Options{Registry: "http://localhost:4873/"}).Resolver().(*npm.Client)
	if !ok {
		t.Fatal("Resolver() should return *npm.Client")
	}
	if c.BaseURL() != "http://localhost:4873" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
}
