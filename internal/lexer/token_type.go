package lexer

// TokenType represents the type of a token in jsubset source code.
// Grouped by category, matching spec.md §4.3's lexical classes.
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota // unexpected character
	EOF                      // end of input

	// Identifiers and literals
	IDENT  // identifiers: x, myVar, $el, _private
	NUMBER // number literals: 123, 1_000, 3.14
	STRING // string literals: 'hello', "world"

	literalEnd // marker

	// Keywords recognized by the lexer (spec.md §4.3). Several are reserved
	// words from the full language but have no grammar production in this
	// subset; the parser rejects them if they appear where a statement or
	// expression is expected.
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	EXPORT
	EXTENDS
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	LET
	NEW
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH
	YIELD
	AWAIT
	ENUM
	IMPLEMENTS
	INTERFACE
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	STATIC

	// Literal keywords
	TRUE
	FALSE
	NULL
	UNDEFINED

	keywordEnd // marker

	// Punctuators
	PLUS       // +
	INC        // ++
	PLUS_EQ    // +=
	MINUS      // -
	DEC        // --
	MINUS_EQ   // -=
	STAR       // *
	STAR_EQ    // *=
	SLASH      // /
	SLASH_EQ   // /=
	PERCENT    // %
	PERCENT_EQ // %=
	ASSIGN     // =
	EQ         // ==
	EQ_STRICT  // ===
	NOT_EQ     // !=
	NOT_EQ_STRICT
	LT         // <
	LT_EQ      // <=
	GT         // >
	GT_EQ      // >=
	BANG       // !
	LPAREN     // (
	RPAREN     // )
	LBRACE     // {
	RBRACE     // }
	LBRACKET   // [
	RBRACKET   // ]
	SEMICOLON  // ;
	COMMA      // ,
	COLON      // :
	DOT        // .
	AND_AND    // &&
	OR_OR      // ||
	FAT_ARROW  // =>
)

var keywords = map[string]TokenType{
	"break":      BREAK,
	"case":       CASE,
	"catch":      CATCH,
	"class":      CLASS,
	"const":      CONST,
	"continue":   CONTINUE,
	"debugger":   DEBUGGER,
	"default":    DEFAULT,
	"delete":     DELETE,
	"do":         DO,
	"else":       ELSE,
	"export":     EXPORT,
	"extends":    EXTENDS,
	"finally":    FINALLY,
	"for":        FOR,
	"function":   FUNCTION,
	"if":         IF,
	"import":     IMPORT,
	"in":         IN,
	"instanceof": INSTANCEOF,
	"let":        LET,
	"new":        NEW,
	"return":     RETURN,
	"super":      SUPER,
	"switch":     SWITCH,
	"this":       THIS,
	"throw":      THROW,
	"try":        TRY,
	"typeof":     TYPEOF,
	"var":        VAR,
	"void":       VOID,
	"while":      WHILE,
	"with":       WITH,
	"yield":      YIELD,
	"await":      AWAIT,
	"enum":       ENUM,
	"implements": IMPLEMENTS,
	"interface":  INTERFACE,
	"package":    PACKAGE,
	"private":    PRIVATE,
	"protected":  PROTECTED,
	"public":     PUBLIC,
	"static":     STATIC,
	"true":       TRUE,
	"false":      FALSE,
	"null":       NULL,
	"undefined":  UNDEFINED,
}

// LookupIdent classifies a scanned identifier as a keyword token or a
// plain IDENT.
func LookupIdent(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

// IsLiteral reports whether tt is a literal token type.
func (tt TokenType) IsLiteral() bool { return tt > EOF && tt < literalEnd }

// IsKeyword reports whether tt is a keyword token type.
func (tt TokenType) IsKeyword() bool { return tt > literalEnd && tt < keywordEnd }

var tokenTypeStrings = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	IDENT: "IDENT", NUMBER: "NUMBER", STRING: "STRING",
	BREAK: "break", CASE: "case", CATCH: "catch", CLASS: "class", CONST: "const",
	CONTINUE: "continue", DEBUGGER: "debugger", DEFAULT: "default", DELETE: "delete",
	DO: "do", ELSE: "else", EXPORT: "export", EXTENDS: "extends", FINALLY: "finally",
	FOR: "for", FUNCTION: "function", IF: "if", IMPORT: "import", IN: "in",
	INSTANCEOF: "instanceof", LET: "let", NEW: "new", RETURN: "return", SUPER: "super",
	SWITCH: "switch", THIS: "this", THROW: "throw", TRY: "try", TYPEOF: "typeof",
	VAR: "var", VOID: "void", WHILE: "while", WITH: "with", YIELD: "yield",
	AWAIT: "await", ENUM: "enum", IMPLEMENTS: "implements", INTERFACE: "interface",
	PACKAGE: "package", PRIVATE: "private", PROTECTED: "protected", PUBLIC: "public",
	STATIC: "static", TRUE: "true", FALSE: "false", NULL: "null", UNDEFINED: "undefined",
	PLUS: "+", INC: "++", PLUS_EQ: "+=", MINUS: "-", DEC: "--", MINUS_EQ: "-=",
	STAR: "*", STAR_EQ: "*=", SLASH: "/", SLASH_EQ: "/=", PERCENT: "%", PERCENT_EQ: "%=",
	ASSIGN: "=", EQ: "==", EQ_STRICT: "===", NOT_EQ: "!=", NOT_EQ_STRICT: "!==",
	LT: "<", LT_EQ: "<=", GT: ">", GT_EQ: ">=", BANG: "!",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	SEMICOLON: ";", COMMA: ",", COLON: ":", DOT: ".", AND_AND: "&&", OR_OR: "||",
	FAT_ARROW: "=>",
}

// String returns a human-readable representation of tt, used in error
// messages and AST pretty-printing.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return "UNKNOWN"
}
