package aff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	gflag "github.com/az-ai-labs/gohunspell/flag"

	"github.com/az-ai-labs/gohunspell/internal/zipreader"
)

// ReadFile parses the .aff file at path into an Aff.
func ReadFile(path string) (*Aff, error) {
	rc, err := zipreader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("aff: %w", err)
	}
	defer rc.Close()
	return Read(rc)
}

// Read parses an .aff document from r. Grounded directly on spyll's
// AffReader: each line is "DIRECTIVE value...", dispatched by directive
// name; PFX/SFX/COMPOUNDRULE/BREAK/REP/ICONV/OCONV/CHECKCOMPOUNDPATTERN
// directives that introduce a table read the following N lines as rows.
func Read(r io.Reader) (*Aff, error) {
	src := bufio.NewScanner(r)
	src.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	b := NewBuilder()
	b.FlagEncoding = gflag.Short

	lines := &lineSource{scanner: src}
	// Strip a leading UTF-8 BOM from the very first line, per spyll's
	// FileReader.readlines.
	first := true

	for {
		ln, ok := lines.next()
		if !ok {
			break
		}
		if first {
			ln = strings.TrimPrefix(ln, "\xef\xbb\xbf")
			first = false
		}
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		fields := strings.Fields(ln)
		name := fields[0]
		rest := fields[1:]
		if err := dispatch(b, lines, name, rest); err != nil {
			return nil, fmt.Errorf("aff: line %d: %w", lines.lineNo, err)
		}
	}

	return b.Build()
}

// lineSource is a tiny line cursor so table-reading directives (PFX, SFX,
// BREAK, REP, ...) can pull their following N rows.
type lineSource struct {
	scanner *bufio.Scanner
	lineNo  int
}

func (l *lineSource) next() (string, bool) {
	if !l.scanner.Scan() {
		return "", false
	}
	l.lineNo++
	return l.scanner.Text(), true
}

func (l *lineSource) fields() ([]string, error) {
	ln, ok := l.next()
	if !ok {
		return nil, fmt.Errorf("unexpected end of file while reading table row")
	}
	return strings.Fields(strings.TrimSpace(ln)), nil
}

func dispatch(b *Builder, lines *lineSource, name string, rest []string) error {
	switch strings.ToUpper(name) {
	case "SET":
		b.Encoding = arg(rest, 0)
	case "FLAG":
		enc, err := gflag.ParseEncoding(arg(rest, 0))
		if err != nil {
			return err
		}
		b.FlagEncoding = enc
	case "LANG":
		b.Lang = arg(rest, 0)
	case "IGNORE":
		b.Ignore = arg(rest, 0)

	case "AF":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("AF: %w", err)
		}
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			set, err := gflag.Decode(arg(row, 1), b.FlagEncoding)
			if err != nil {
				return err
			}
			b.AliasFlags = append(b.AliasFlags, set.Slice())
		}

	case "PFX", "SFX":
		if len(rest) < 3 {
			return fmt.Errorf("%s: expected flag, cross-product, count", name)
		}
		fl, err := gflag.DecodeOne(rest[0], b.FlagEncoding)
		if err != nil {
			return err
		}
		crossProduct := rest[1] == "Y"
		count, err := strconv.Atoi(rest[2])
		if err != nil {
			return fmt.Errorf("%s: bad count: %w", name, err)
		}
		group := RawAffixGroup{Flag: fl, CrossProduct: crossProduct}
		for i := 0; i < count; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			// row: SFX/PFX flag strip add[/flags] condition — each table
			// row repeats the directive keyword and flag, so the fields
			// that matter start at index 2.
			if len(row) < 5 {
				return fmt.Errorf("%s table row: expected 5 fields, got %d", name, len(row))
			}
			strip := row[2]
			if strip == "0" {
				strip = ""
			}
			add, affFlags := splitSlashFlags(row[3])
			flagSet, err := gflag.Decode(affFlags, b.FlagEncoding)
			if err != nil {
				return err
			}
			condition := row[4]
			if condition == "" {
				condition = "."
			}
			group.Variants = append(group.Variants, Variant{
				Strip:     strip,
				Add:       add,
				Condition: condition,
				Flags:     flagSet,
			})
		}
		if strings.ToUpper(name) == "PFX" {
			b.PfxGroups = append(b.PfxGroups, group)
		} else {
			b.SfxGroups = append(b.SfxGroups, group)
		}

	case "CIRCUMFIX":
		b.Circumfix = gflag.Flag(arg(rest, 0))
	case "NEEDAFFIX", "PSEUDOROOT":
		b.NeedAffix = gflag.Flag(arg(rest, 0))
	case "FORBIDDENWORD":
		b.ForbiddenWord = gflag.Flag(arg(rest, 0))
	case "NOSUGGEST":
		b.NoSuggest = gflag.Flag(arg(rest, 0))
	case "KEEPCASE":
		b.KeepCase = gflag.Flag(arg(rest, 0))
	case "FORCEUCASE":
		b.ForceUCase = gflag.Flag(arg(rest, 0))
	case "CHECKSHARPS":
		b.CheckSharps = true

	case "COMPOUNDRULE":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("COMPOUNDRULE: %w", err)
		}
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			b.CompoundRuleTexts = append(b.CompoundRuleTexts, arg(row, 1))
		}
	case "COMPOUNDMIN":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("COMPOUNDMIN: %w", err)
		}
		b.CompoundMin = n
	case "COMPOUNDWORDMAX":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("COMPOUNDWORDMAX: %w", err)
		}
		b.CompoundWordMax = n
	case "COMPOUNDFLAG":
		b.CompoundFlag = gflag.Flag(arg(rest, 0))
	case "COMPOUNDBEGIN":
		b.CompoundBegin = gflag.Flag(arg(rest, 0))
	case "COMPOUNDMIDDLE":
		b.CompoundMiddle = gflag.Flag(arg(rest, 0))
	case "COMPOUNDEND", "COMPOUNDLAST":
		b.CompoundEnd = gflag.Flag(arg(rest, 0))
	case "ONLYINCOMPOUND":
		b.OnlyInCompound = gflag.Flag(arg(rest, 0))
	case "COMPOUNDPERMITFLAG":
		b.CompoundPermitFlag = gflag.Flag(arg(rest, 0))
	case "COMPOUNDFORBIDFLAG":
		b.CompoundForbidFlag = gflag.Flag(arg(rest, 0))
	case "SIMPLIFIEDTRIPLE":
		b.SimplifiedTriple = true
	case "CHECKCOMPOUNDREP":
		b.CheckCompoundRep = true
	case "CHECKCOMPOUNDTRIPLE":
		b.CheckCompoundTriple = true
	case "CHECKCOMPOUNDCASE":
		b.CheckCompoundCase = true
	case "CHECKCOMPOUNDDUP":
		b.CheckCompoundDup = true

	case "CHECKCOMPOUNDPATTERN":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("CHECKCOMPOUNDPATTERN: %w", err)
		}
		b.CheckCompoundPattern = true
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			b.CompoundPatterns = append(b.CompoundPatterns, [3]string{arg(row, 1), arg(row, 2), arg(row, 3)})
		}

	case "BREAK":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("BREAK: %w", err)
		}
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			b.Break = append(b.Break, arg(row, 1))
		}

	case "REP":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("REP: %w", err)
		}
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			b.Rep = append(b.Rep, [2]string{arg(row, 1), arg(row, 2)})
		}

	case "ICONV", "OCONV":
		n, err := strconv.Atoi(arg(rest, 0))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		for i := 0; i < n; i++ {
			row, err := lines.fields()
			if err != nil {
				return err
			}
			pair := [2]string{arg(row, 1), arg(row, 2)}
			if strings.ToUpper(name) == "ICONV" {
				b.Iconv = append(b.Iconv, pair)
			} else {
				b.Oconv = append(b.Oconv, pair)
			}
		}

	default:
		// Unknown/unsupported directive (KEY, TRY, MAP, WORDCHARS, ...):
		// ignored, since none of them affect LOOKUP semantics (they serve
		// the out-of-scope suggestion engine). Table-shaped unknown
		// directives aren't an issue here because spec.md's supported
		// directive set is exactly the set handled above.
	}
	return nil
}

func arg(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// splitSlashFlags splits an affix table's "add" column into the literal
// text to add and its continuation-flag suffix, e.g. "ed/KM" -> ("ed",
// "KM").
func splitSlashFlags(s string) (add, flags string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		add := s[:i]
		if add == "0" {
			add = ""
		}
		return add, s[i+1:]
	}
	if s == "0" {
		return "", ""
	}
	return s, ""
}
