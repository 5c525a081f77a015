package config

import (
	"fmt"

	"github.com/fieldscope/fieldscope/pkg/fieldscope/geo"
	"github.com/fieldscope/fieldscope/pkg/fieldscope/lexicon"
)

// Loader loads configuration files and constructs engine components.
// A blank path means "use the built-in default" for that component.
type Loader struct {
	LexiconPath string
}

// Components holds the loaded configuration components.
type Components struct {
	Lexicon  *lexicon.Lexicon
	Resolver geo.Resolver
}

// Load reads the configured files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.LexiconPath != "" {
		lex, err := LoadLexicon(l.LexiconPath)
		if err != nil {
			return nil, fmt.Errorf("load lexicon: %w", err)
		}
		comp.Lexicon = lex
	} else {
		comp.Lexicon = lexicon.Default()
	}

	comp.Resolver = geo.NewStaticResolver(comp.Lexicon.Locations)
	return comp, nil
}
