package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/backstory/internal/domain"
)

//go:embed default.toml
var defaultContent []byte

// Default returns the raw built-in content file.
func Default() []byte {
	return append([]byte(nil), defaultContent...)
}

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("videoid", func(fl validator.FieldLevel) bool {
		return videoIDPattern.MatchString(fl.Field().String())
	})
}

// Parse decodes, validates and renders a content document. Unknown keys are
// rejected so typos surface instead of silently dropping copy.
func Parse(data []byte) (*Site, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var site Site
	if err := dec.Decode(&site); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", domain.ErrContentInvalid, strict.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", domain.ErrContentInvalid, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrContentInvalid, err)
	}

	if err := validatorInstance.Struct(&site); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContentInvalid, err)
	}
	if site.Podcast.DefaultTab == "" {
		site.Podcast.DefaultTab = TabLong
	}
	if err := site.render(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Load reads path from fs. An empty path loads the built-in content.
func Load(fs afero.Fs, path string) (*Site, error) {
	if path == "" {
		return Parse(defaultContent)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

func (s *Site) render() error {
	var err error
	if s.About.LeadHTML, err = Markdown(s.About.Lead); err != nil {
		return err
	}
	if s.About.MoreHTML, err = Markdown(s.About.More); err != nil {
		return err
	}
	for i := range s.Journey.Cards {
		card := &s.Journey.Cards[i]
		if card.DescriptionHTML, err = Markdown(card.Description); err != nil {
			return err
		}
	}
	return nil
}
