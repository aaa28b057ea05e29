// Package i18n builds message printers from YAML translation files.
package i18n

import (
	"fmt"
	"io/fs"

	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Printers returns a printer per translation found in dir, keyed by language.
// Messages missing from a translation fall back to defaultLang.
func Printers(dir fs.FS, defaultLang string) (map[string]*message.Printer, error) {
	translations, err := dictionaries(dir)
	if err != nil {
		return nil, err
	}
	if _, ok := translations[defaultLang]; !ok {
		return nil, fmt.Errorf("no translation found for default language %q", defaultLang)
	}

	cat, err := catalog.NewFromMap(translations, catalog.Fallback(language.MustParse(defaultLang)))
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(translations))
	for lang := range translations {
		printers[lang] = message.NewPrinter(language.MustParse(lang), message.Catalog(cat))
	}
	return printers, nil
}

// Languages returns the languages printers are available for, sorted.
func Languages(printers map[string]*message.Printer) []string {
	langs := make([]string, 0, len(printers))
	for lang := range printers {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Translator renders messages in a given language.
type Translator interface {
	T(lang, key string, values ...interface{}) string
}

// PrinterTranslator is a Translator over a set of printers. Unknown languages
// use the default one.
type PrinterTranslator struct {
	printers    map[string]*message.Printer
	defaultLang string
}

func NewTranslator(printers map[string]*message.Printer, defaultLang string) *PrinterTranslator {
	return &PrinterTranslator{printers: printers, defaultLang: defaultLang}
}

func (t *PrinterTranslator) T(lang, key string, values ...interface{}) string {
	printer, ok := t.printers[lang]
	if !ok {
		printer = t.printers[t.defaultLang]
	}
	return printer.Sprintf(key, values...)
}
