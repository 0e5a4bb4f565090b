package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/century/internal/domain"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Column names of a land-cover series file.
const (
	ColYear  = "Ano"
	ColClass = "Classe_MapBiomas"
	ColCode  = "Codigo_MapBiomas"
	ColPoint = "ponto"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadSeries reads a land-cover series CSV file. When point is non-empty and
// the file has a "ponto" column, only rows for that point are kept.
func LoadSeries(path, point string) ([]domain.YearClass, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSeries(data, point)
}

// ParseSeries decodes a series CSV (UTF-8, falling back to Latin-1) and
// returns it sorted by year. Class labels are NFC-normalised so keyword
// matching sees composed accents.
func ParseSeries(data []byte, point string) ([]domain.YearClass, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("series file is empty")
		}
		return nil, fmt.Errorf("reading series header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	yearCol, ok := cols[ColYear]
	if !ok {
		return nil, fmt.Errorf("series file requires column %q", ColYear)
	}
	classCol, hasClass := cols[ColClass]
	codeCol, hasCode := cols[ColCode]
	if !hasClass && !hasCode {
		return nil, fmt.Errorf("series file requires column %q or %q", ColClass, ColCode)
	}
	pointCol, hasPoint := cols[ColPoint]

	var out []domain.YearClass
	line := 1
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if point != "" && hasPoint && cell(rec, pointCol) != point {
			continue
		}

		year, err := strconv.Atoi(cell(rec, yearCol))
		if err != nil {
			return nil, fmt.Errorf("line %d: year %q is not an integer", line, cell(rec, yearCol))
		}
		yc := domain.YearClass{Year: year}
		if hasCode && cell(rec, codeCol) != "" {
			code, err := strconv.Atoi(cell(rec, codeCol))
			if err != nil {
				return nil, fmt.Errorf("line %d: class code %q is not an integer", line, cell(rec, codeCol))
			}
			yc.Code = code
		}
		if hasClass {
			yc.Label = norm.NFC.String(cell(rec, classCol))
		}
		if yc.Label == "" && hasCode {
			yc.Label = domain.MapBiomasClass(yc.Code)
		}
		out = append(out, yc)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	if err := domain.CheckAscending(out); err != nil {
		return nil, fmt.Errorf("duplicate year in series: %w", err)
	}
	return out, nil
}

func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func decodeText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding series as Latin-1: %w", err)
	}
	return string(decoded), nil
}
