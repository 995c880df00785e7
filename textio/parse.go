package textio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/model"
)

var (
	ErrMissingHeader = errors.New("missing grid size header")
	ErrInvalidHeader = errors.New("invalid grid size header")
	ErrRowWidth      = errors.New("invalid row size")
	ErrCellChar      = errors.New("invalid cell character")
	ErrRowCount      = errors.New("row count does not match header")
)

// LoadFile reads an initial generation from the file at path
func LoadFile(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to parse file: %+v", path)
	}
	return grid, nil
}

// ParseGrid reads an initial generation: a "<rows> <cols>" header followed by rows lines of
// cols characters drawn from '.', '1' and '2'. Blank lines are skipped and every line is trimmed.
func ParseGrid(r io.Reader) (*model.Grid, error) {
	var (
		scanner    = bufio.NewScanner(r)
		lineNum    = 0
		rows, cols = 0, 0
		cells      []model.Cell
		haveHeader = false
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !haveHeader {
			var err error
			if rows, cols, err = parseHeader(line, lineNum); err != nil {
				return nil, err
			}
			haveHeader = true
			continue
		}

		if len(cells) == rows*cols {
			return nil, errors.Wrapf(ErrRowCount, "[ParseGrid] unexpected extra row at line %d, want %d rows", lineNum, rows)
		}
		row, err := parseRow(line, cols, lineNum)
		if err != nil {
			return nil, err
		}
		cells = append(cells, row...)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseGrid] failed to read input")
	}

	if !haveHeader {
		return nil, errors.Wrap(ErrMissingHeader, "[ParseGrid] failed to read grid")
	}
	if len(cells) != rows*cols {
		return nil, errors.Wrapf(ErrRowCount, "[ParseGrid] got %d rows, want %d", len(cells)/cols, rows)
	}

	return model.NewGridFromCells(rows, cols, cells)
}

func parseHeader(line string, lineNum int) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "[parseHeader] invalid definition of grid size '%s' at line %d", line, lineNum)
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil || rows < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "[parseHeader] invalid grid row size '%s' at line %d", fields[0], lineNum)
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil || cols < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "[parseHeader] invalid grid column size '%s' at line %d", fields[1], lineNum)
	}
	if !model.ValidDimensions(rows, cols) {
		return 0, 0, errors.Wrapf(ErrInvalidHeader, "[parseHeader] grid size %dx%d at line %d exceeds %d cells", rows, cols, lineNum, model.MaxCells)
	}
	return rows, cols, nil
}

func parseRow(line string, cols, lineNum int) ([]model.Cell, error) {
	runes := []rune(line)
	if len(runes) != cols {
		return nil, errors.Wrapf(ErrRowWidth, "[parseRow] invalid row size '%d' at line %d, want %d", len(runes), lineNum, cols)
	}
	row := make([]model.Cell, cols)
	for i, ch := range runes {
		c, ok := model.CellFromRune(ch)
		if !ok {
			return nil, errors.Wrapf(ErrCellChar, "[parseRow] invalid cell character '%c' at line %d, only '.', '1' or '2' is accepted", ch, lineNum)
		}
		row[i] = c
	}
	return row, nil
}
