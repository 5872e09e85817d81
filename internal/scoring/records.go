package scoring

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/camelcards/camel"
)

var (
	// ErrMalformedRecord is returned for lines that are not "<hand> <bid>".
	ErrMalformedRecord = errors.New("record must be \"<hand> <bid>\"")
	// ErrInvalidBid is returned when the bid is not a non-negative integer.
	ErrInvalidBid = errors.New("invalid bid")
)

// ParseRecord parses a single "<hand> <bid>" line such as "32T3K 765".
func ParseRecord(line string, lineNo int) (WageredHand, error) {
	code, bidText, ok := strings.Cut(line, " ")
	if !ok || strings.Contains(bidText, " ") {
		return WageredHand{}, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedRecord, line)
	}

	hand, err := camel.ParseHand(code)
	if err != nil {
		return WageredHand{}, fmt.Errorf("line %d: %w", lineNo, err)
	}

	bid, err := strconv.ParseUint(bidText, 10, 64)
	if err != nil {
		return WageredHand{}, fmt.Errorf("line %d: %w %q", lineNo, ErrInvalidBid, bidText)
	}

	wh := NewWageredHand(hand, bid)
	wh.Line = lineNo
	return wh, nil
}

// ReadRecords reads one record per line from r. Blank lines are skipped and
// CRLF endings are accepted. The first malformed line aborts the read; no
// partial result is returned.
func ReadRecords(r io.Reader) ([]WageredHand, error) {
	var hands []WageredHand
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		wh, err := ParseRecord(line, lineNo)
		if err != nil {
			return nil, err
		}
		hands = append(hands, wh)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return hands, nil
}

// ScoreReader reads every record from r and returns the total winnings.
func ScoreReader(r io.Reader) (uint64, error) {
	hands, err := ReadRecords(r)
	if err != nil {
		return 0, err
	}
	return Score(hands), nil
}
