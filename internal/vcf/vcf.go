// Package vcf reads the per-sample gzipped Variant Call Format files that
// back the variants table on the dataset page. It parses the subset of VCF
// needed for display: meta lines, the header, and the fixed plus per-sample
// columns of each record.
package vcf

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a sample has no VCF file on disk.
var ErrNotFound = errors.New("vcf file not found")

// Record is a single variant call.
type Record struct {
	Chrom   string   `json:"chrom"`
	Pos     int      `json:"pos"`
	ID      string   `json:"id"`
	Ref     string   `json:"ref"`
	Alt     string   `json:"alt"`
	Qual    string   `json:"qual"`
	Filter  string   `json:"filter"`
	Info    string   `json:"info"`
	Format  string   `json:"format,omitempty"`
	Samples []string `json:"samples,omitempty"`
}

// File is a parsed VCF: the ## meta lines (without the leading hashes),
// the #CHROM header columns, and the variant records.
type File struct {
	Meta    []string `json:"meta"`
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Locator resolves sample names to VCF paths inside a data directory,
// following the <dir>/<sample>.vcf.gz layout.
type Locator struct {
	dir string
}

func NewLocator(dir string) *Locator {
	return &Locator{dir: dir}
}

// Path returns the on-disk path for a sample's VCF, or ErrNotFound.
func (l *Locator) Path(sample string) (string, error) {
	p := filepath.Join(l.dir, sample+".vcf.gz")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("sample %q: %w", sample, ErrNotFound)
		}
		return "", err
	}
	return p, nil
}

// Open reads and parses a sample's gzipped VCF.
func (l *Locator) Open(sample string) (*File, error) {
	p, err := l.Path(sample)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", p, err)
	}
	defer gz.Close()

	parsed, err := Parse(gz)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	return parsed, nil
}

// Parse reads an uncompressed VCF stream.
func Parse(r io.Reader) (*File, error) {
	out := &File{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "##"):
			out.Meta = append(out.Meta, strings.TrimPrefix(line, "##"))
		case strings.HasPrefix(line, "#"):
			out.Columns = strings.Split(strings.TrimPrefix(line, "#"), "\t")
		default:
			rec, err := parseRecord(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			out.Records = append(out.Records, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if out.Columns == nil {
		return nil, errors.New("missing #CHROM header line")
	}
	return out, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 8 {
		return Record{}, fmt.Errorf("record has %d fields, want at least 8", len(fields))
	}
	pos, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, fmt.Errorf("bad POS %q: %w", fields[1], err)
	}
	rec := Record{
		Chrom:  fields[0],
		Pos:    pos,
		ID:     fields[2],
		Ref:    fields[3],
		Alt:    fields[4],
		Qual:   fields[5],
		Filter: fields[6],
		Info:   fields[7],
	}
	if len(fields) > 8 {
		rec.Format = fields[8]
		rec.Samples = fields[9:]
	}
	return rec, nil
}
