package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	folioerrors "github.com/folio-sh/folio/pkg/errors"
)

//go:embed default.yaml
var defaultContent []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a site content file from disk, validates it, and returns
// the resulting model. An empty path loads the embedded default site.
func Load(path string) (*Site, error) {
	if path == "" {
		return parse("embedded default", defaultContent)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, 0, err)
	}

	return parse(path, data)
}

func parse(path string, data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, folioerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&site); err != nil {
		return nil, err
	}

	return &site, nil
}

// Validate checks the content model against its field constraints.
func Validate(site *Site) error {
	if site == nil {
		return folioerrors.NewValidationError("", "content document is empty", nil)
	}

	if err := validatorInstance().Struct(site); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return folioerrors.NewValidationError(
				fieldPath(first.Namespace()),
				friendlyMessage(first),
				err,
			)
		}
		return err
	}

	return nil
}

// fieldPath strips the root struct name from a validator namespace,
// turning "Site.Profile.Name" into "profile.name".
func fieldPath(namespace string) string {
	trimmed := strings.TrimPrefix(namespace, "Site.")
	return strings.ToLower(trimmed)
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q rule", fe.Tag())
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
