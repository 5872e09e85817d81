package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/camelcards/camel"
	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/logging"
	"github.com/lox/camelcards/internal/scoring"
)

const sampleInput = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func testEnv(t *testing.T, stdin string) (*Env, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &Env{
		Config: config.Default(),
		Logger: logging.Discard(),
		Clock:  quartz.NewMock(t),
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
	}, &out
}

func runCLI(t *testing.T, env *Env, args ...string) error {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("camelcards"),
		kong.Vars{"version": "test"},
		kong.Exit(func(code int) { t.Fatalf("unexpected exit with code %d", code) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(env)
}

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestScoreFromStdin(t *testing.T) {
	env, out := testEnv(t, sampleInput)
	require.NoError(t, runCLI(t, env, "score"))
	assert.Equal(t, "6440\n", out.String())
}

func TestScoreIsDefaultCommand(t *testing.T) {
	path := writeInput(t, t.TempDir(), "hands.txt", sampleInput)

	env, out := testEnv(t, "")
	require.NoError(t, runCLI(t, env, path))
	assert.Equal(t, "6440\n", out.String())
}

func TestScoreMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	first := writeInput(t, dir, "a.txt", sampleInput)
	second := writeInput(t, dir, "b.txt", "AAAAA 10\n23456 5\n")

	env, out := testEnv(t, "")
	require.NoError(t, runCLI(t, env, "score", "--jobs", "2", first, second))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], first))
	assert.True(t, strings.HasSuffix(lines[0], "6440"))
	assert.True(t, strings.HasPrefix(lines[1], second))
	assert.True(t, strings.HasSuffix(lines[1], "25"))
}

func TestScoreFailsFast(t *testing.T) {
	dir := t.TempDir()
	good := writeInput(t, dir, "good.txt", sampleInput)
	bad := writeInput(t, dir, "bad.txt", "32T3K 765\nX2345 10\n")

	env, out := testEnv(t, "")
	err := runCLI(t, env, "score", good, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, camel.ErrInvalidRank)
	assert.Contains(t, err.Error(), bad)
	assert.Contains(t, err.Error(), "line 2")
	assert.Empty(t, out.String())
}

func TestScoreInvalidBid(t *testing.T) {
	env, _ := testEnv(t, "32T3K many\n")
	err := runCLI(t, env, "score")
	assert.ErrorIs(t, err, scoring.ErrInvalidBid)
}

func TestScoreStandings(t *testing.T) {
	env, out := testEnv(t, sampleInput)
	require.NoError(t, runCLI(t, env, "score", "--standings"))

	text := out.String()
	for _, want := range []string{"rank", "QQQJA", "Three of a Kind", "2415", "KTJJT", "Two Pair"} {
		assert.Contains(t, text, want)
	}
	assert.True(t, strings.HasSuffix(text, "\n6440\n"))
	assert.Less(t, strings.Index(text, "32T3K"), strings.Index(text, "QQQJA"))
}

func TestScoreWritesOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "winnings.txt")

	env, out := testEnv(t, sampleInput)
	require.NoError(t, runCLI(t, env, "score", "--output", target))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, out.String(), string(data))
	assert.Equal(t, "6440\n", string(data))
}

func TestClassify(t *testing.T) {
	env, out := testEnv(t, "")
	require.NoError(t, runCLI(t, env, "classify", "AAAAA", "AA8AA", "23456", "7788A"))

	text := out.String()
	assert.Contains(t, text, "Five of a Kind")
	assert.Contains(t, text, "Four of a Kind")
	assert.Contains(t, text, "High Card")
	assert.Contains(t, text, "Two Pair")
}

func TestClassifyExplainAndSort(t *testing.T) {
	env, out := testEnv(t, "")
	require.NoError(t, runCLI(t, env, "classify", "--explain", "--sort", "88877", "77888", "32T3K"))

	text := out.String()
	assert.Contains(t, text, "3-2")
	assert.Contains(t, text, "Full House (Eight, Seven)")
	assert.Less(t, strings.Index(text, "32T3K"), strings.Index(text, "77888"))
	assert.Less(t, strings.Index(text, "77888"), strings.Index(text, "88877"))
}

func TestClassifyRejectsBadHand(t *testing.T) {
	env, _ := testEnv(t, "")
	err := runCLI(t, env, "classify", "2345")
	assert.ErrorIs(t, err, camel.ErrInvalidLength)
}

func TestGenerateIsDeterministic(t *testing.T) {
	envA, outA := testEnv(t, "")
	require.NoError(t, runCLI(t, envA, "generate", "-n", "20", "--seed", "42", "--max-bid", "50"))
	envB, outB := testEnv(t, "")
	require.NoError(t, runCLI(t, envB, "generate", "-n", "20", "--seed", "42", "--max-bid", "50"))
	assert.Equal(t, outA.String(), outB.String())

	hands, err := scoring.ReadRecords(strings.NewReader(outA.String()))
	require.NoError(t, err)
	require.Len(t, hands, 20)
	for _, h := range hands {
		assert.GreaterOrEqual(t, h.Bid, uint64(1))
		assert.LessOrEqual(t, h.Bid, uint64(50))
	}
}

func TestGenerateUsesConfigDefaults(t *testing.T) {
	env, out := testEnv(t, "")
	env.Config.Generate.Count = 3
	env.Config.Generate.Seed = 11
	require.NoError(t, runCLI(t, env, "generate"))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 3)
}

func TestNewEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "camelcards.hcl", "log_level = \"warn\"\njobs = 3\n")

	var stderr bytes.Buffer
	env, err := newEnv(&CLI{Config: path}, strings.NewReader(""), &bytes.Buffer{}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "warn", env.Config.LogLevel)
	assert.Equal(t, 3, env.Config.Jobs)

	env, err = newEnv(&CLI{Config: path, LogLevel: "debug"}, nil, nil, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "debug", env.Config.LogLevel)

	_, err = newEnv(&CLI{Config: path, LogLevel: "chatty"}, nil, nil, &stderr)
	assert.Error(t, err)

	env, err = newEnv(&CLI{Config: filepath.Join(dir, "missing.hcl")}, nil, nil, &stderr)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), env.Config)
}
