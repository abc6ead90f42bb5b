package schema

import (
	"fmt"

	"github.com/kestrel-engine/kestrel/errs"
)

// Entry describes the fixed on-wire shape of every node stamped with a
// given Tag. It never varies per-instance: a CALL node always has exactly
// one skip and one fixed subtree, regardless of how many arguments it
// carries (those live in the trailing sequence bounded by that skip).
type Entry struct {
	// Name is the schema name used by the dumper and by Tag.String.
	Name string
	// HasVarintLength reports whether the node carries a varint byte-length
	// prefix immediately after its skip slots.
	HasVarintLength bool
	// HasInlineString reports whether, after the varint length, the node
	// embeds that many bytes of raw payload (identifier text, numeric
	// literal text, string contents, regex source, or label name).
	HasInlineString bool
	// NumSkips is the number of 2-byte forward offsets reserved at the
	// node's payload start. The first, if present, is always END.
	NumSkips int
	// NumSubtrees is the number of ordered fixed children that precede any
	// trailing sequences.
	NumSubtrees int
	// SkipNames labels the first len(SkipNames) skip slots for diagnostic
	// dumping (§4.4). Remaining slots, if any, are unnamed. May be nil.
	SkipNames []string
}

// table is indexed by Tag. It is the one and only place node shape is
// declared; ast.Writer, ast.Reader and ast.Dump all consult it instead of
// switching on tag values themselves.
var table = [numTags]Entry{
	NOP: {Name: "NOP"},

	SCRIPT:     {Name: "SCRIPT", NumSkips: 2, SkipNames: []string{"end", "strict_end"}},
	VAR:        {Name: "VAR", NumSkips: 2, SkipNames: []string{"end", "decls_end"}},
	VAR_DECL:   {Name: "VAR_DECL", HasVarintLength: true, HasInlineString: true, NumSubtrees: 1},
	FUNC_DECL:  {Name: "FUNC_DECL", HasVarintLength: true, HasInlineString: true, NumSubtrees: 1},
	IF:         {Name: "IF", NumSkips: 2, NumSubtrees: 1, SkipNames: []string{"end", "end_true"}},
	FUNC:       {Name: "FUNC", NumSkips: 3, NumSubtrees: 1, SkipNames: []string{"end", "params", "body"}},

	ASSIGN:         {Name: "ASSIGN", NumSubtrees: 2},
	ASSIGN_ADD:     {Name: "ASSIGN_ADD", NumSubtrees: 2},
	ASSIGN_SUB:     {Name: "ASSIGN_SUB", NumSubtrees: 2},
	ASSIGN_MUL:     {Name: "ASSIGN_MUL", NumSubtrees: 2},
	ASSIGN_DIV:     {Name: "ASSIGN_DIV", NumSubtrees: 2},
	ASSIGN_REM:     {Name: "ASSIGN_REM", NumSubtrees: 2},
	ASSIGN_LSHIFT:  {Name: "ASSIGN_LSHIFT", NumSubtrees: 2},
	ASSIGN_RSHIFT:  {Name: "ASSIGN_RSHIFT", NumSubtrees: 2},
	ASSIGN_URSHIFT: {Name: "ASSIGN_URSHIFT", NumSubtrees: 2},
	ASSIGN_AND:     {Name: "ASSIGN_AND", NumSubtrees: 2},
	ASSIGN_OR:      {Name: "ASSIGN_OR", NumSubtrees: 2},
	ASSIGN_XOR:     {Name: "ASSIGN_XOR", NumSubtrees: 2},

	NUM:    {Name: "NUM", HasVarintLength: true, HasInlineString: true},
	IDENT:  {Name: "IDENT", HasVarintLength: true, HasInlineString: true},
	STRING: {Name: "STRING", HasVarintLength: true, HasInlineString: true},
	REGEX:  {Name: "REGEX", HasVarintLength: true, HasInlineString: true},
	LABEL:  {Name: "LABEL", HasVarintLength: true, HasInlineString: true},

	SEQ:    {Name: "SEQ", NumSkips: 1, SkipNames: []string{"end"}},
	WHILE:  {Name: "WHILE", NumSkips: 1, NumSubtrees: 1, SkipNames: []string{"end"}},
	DOWHILE: {Name: "DOWHILE", NumSkips: 2, SkipNames: []string{"end", "body_end"}},
	FOR:    {Name: "FOR", NumSkips: 2, NumSubtrees: 3, SkipNames: []string{"end", "body"}},
	FOR_IN: {Name: "FOR_IN", NumSkips: 2, NumSubtrees: 3, SkipNames: []string{"end", "body"}},
	COND:   {Name: "COND", NumSubtrees: 3},

	DEBUGGER: {Name: "DEBUGGER"},
	BREAK:    {Name: "BREAK"},
	CONTINUE: {Name: "CONTINUE"},
	RETURN:   {Name: "RETURN"},

	LAB_BREAK:    {Name: "LAB_BREAK", NumSubtrees: 1},
	LAB_CONTINUE: {Name: "LAB_CONTINUE", NumSubtrees: 1},
	VAL_RETURN:   {Name: "VAL_RETURN", NumSubtrees: 1},
	THROW:        {Name: "THROW", NumSubtrees: 1},

	TRY:     {Name: "TRY", NumSkips: 3, NumSubtrees: 1, SkipNames: []string{"end", "catch", "finally"}},
	SWITCH:  {Name: "SWITCH", NumSkips: 2, NumSubtrees: 1, SkipNames: []string{"end", "default_at"}},
	CASE:    {Name: "CASE", NumSkips: 1, NumSubtrees: 1, SkipNames: []string{"end"}},
	DEFAULT: {Name: "DEFAULT", NumSkips: 1, SkipNames: []string{"end"}},
	WITH:    {Name: "WITH", NumSkips: 1, NumSubtrees: 1, SkipNames: []string{"end"}},

	LOG_OR:     {Name: "LOG_OR", NumSubtrees: 2},
	LOG_AND:    {Name: "LOG_AND", NumSubtrees: 2},
	OR:         {Name: "OR", NumSubtrees: 2},
	XOR:        {Name: "XOR", NumSubtrees: 2},
	AND:        {Name: "AND", NumSubtrees: 2},
	EQ:         {Name: "EQ", NumSubtrees: 2},
	EQ_EQ:      {Name: "EQ_EQ", NumSubtrees: 2},
	NE:         {Name: "NE", NumSubtrees: 2},
	NE_NE:      {Name: "NE_NE", NumSubtrees: 2},
	LE:         {Name: "LE", NumSubtrees: 2},
	LT:         {Name: "LT", NumSubtrees: 2},
	GE:         {Name: "GE", NumSubtrees: 2},
	GT:         {Name: "GT", NumSubtrees: 2},
	IN:         {Name: "IN", NumSubtrees: 2},
	INSTANCEOF: {Name: "INSTANCEOF", NumSubtrees: 2},
	LSHIFT:     {Name: "LSHIFT", NumSubtrees: 2},
	RSHIFT:     {Name: "RSHIFT", NumSubtrees: 2},
	URSHIFT:    {Name: "URSHIFT", NumSubtrees: 2},
	ADD:        {Name: "ADD", NumSubtrees: 2},
	SUB:        {Name: "SUB", NumSubtrees: 2},
	REM:        {Name: "REM", NumSubtrees: 2},
	MUL:        {Name: "MUL", NumSubtrees: 2},
	DIV:        {Name: "DIV", NumSubtrees: 2},

	POS:         {Name: "POS", NumSubtrees: 1},
	NEG:         {Name: "NEG", NumSubtrees: 1},
	NOT:         {Name: "NOT", NumSubtrees: 1},
	LOGICAL_NOT: {Name: "LOGICAL_NOT", NumSubtrees: 1},
	VOID:        {Name: "VOID", NumSubtrees: 1},
	DELETE:      {Name: "DELETE", NumSubtrees: 1},
	TYPEOF:      {Name: "TYPEOF", NumSubtrees: 1},
	PREINC:      {Name: "PREINC", NumSubtrees: 1},
	PREDEC:      {Name: "PREDEC", NumSubtrees: 1},
	POSTINC:     {Name: "POSTINC", NumSubtrees: 1},
	POSTDEC:     {Name: "POSTDEC", NumSubtrees: 1},

	MEMBER: {Name: "MEMBER", HasVarintLength: true, HasInlineString: true, NumSubtrees: 1},
	INDEX:  {Name: "INDEX", NumSubtrees: 2},
	CALL:   {Name: "CALL", NumSkips: 1, NumSubtrees: 1, SkipNames: []string{"end"}},
	NEW:    {Name: "NEW", NumSkips: 1, NumSubtrees: 1, SkipNames: []string{"end"}},
	ARRAY:  {Name: "ARRAY", NumSkips: 1, SkipNames: []string{"end"}},
	OBJECT: {Name: "OBJECT", NumSkips: 1, SkipNames: []string{"end"}},
	PROP:   {Name: "PROP", HasVarintLength: true, HasInlineString: true, NumSubtrees: 1},
	GETTER: {Name: "GETTER", NumSubtrees: 1},
	SETTER: {Name: "SETTER", NumSubtrees: 1},

	THIS:       {Name: "THIS"},
	TRUE:       {Name: "TRUE"},
	FALSE:      {Name: "FALSE"},
	NULL:       {Name: "NULL"},
	UNDEF:      {Name: "UNDEF"},
	USE_STRICT: {Name: "USE_STRICT"},
}

// Lookup returns the schema entry for t.
func Lookup(t Tag) (Entry, error) {
	if !t.Valid() {
		return Entry{}, fmt.Errorf("schema: tag %d: %w", uint8(t), errs.ErrUnknownTag)
	}

	return table[t], nil
}

// MustLookup is Lookup but panics on an unknown tag. Writer call sites use
// this: an unknown tag passed to BeginNode is a programmer error, not a
// recoverable condition (§7).
func MustLookup(t Tag) Entry {
	e, err := Lookup(t)
	if err != nil {
		panic(err)
	}

	return e
}

// All returns the schema table in tag order, for callers (the hash digest,
// tooling, tests) that need to walk the whole catalogue.
func All() []Entry {
	out := make([]Entry, numTags)
	copy(out, table[:])

	return out
}

func unknownTagName(t Tag) string {
	return fmt.Sprintf("TAG_%d", uint8(t))
}
