package classify

// TypeScript and TSX tables. The two grammars share kind names for everything
// the metrics consume, so the TSX table aliases the TypeScript sets.

var typescriptTable = &table{
	unit: "program",

	branch:     mkset("if", "case", "catch", "ternary_expression"),
	loop:       mkset("for", "while"),
	logicalAnd: mkset("&&"),
	logicalOr:  mkset("||"),

	cogBranch: mkset("if_statement", "ternary_expression", "switch_case", "catch_clause"),
	cogLoop:   mkset("for_statement", "for_in_statement", "while_statement", "do_statement"),

	exit: mkset("return_statement"),

	funcs: mkset(
		"function_declaration", "generator_function_declaration",
		"method_definition",
	),
	closures: mkset("arrow_function", "function_expression", "generator_function"),
	types: mkset(
		"class", "class_declaration", "abstract_class_declaration",
		"interface_declaration",
	),
	namespaces: mkset("internal_module", "module"),

	comments: mkset("comment"),
	strings:  mkset("string", "template_string"),

	calls: mkset("call_expression", "new_expression"),
	assignments: mkset(
		"assignment_expression", "augmented_assignment_expression",
		"variable_declarator",
	),
	attributes: mkset("public_field_definition", "property_signature"),

	statements: mkset(
		"lexical_declaration", "variable_declaration", "expression_statement",
		"return_statement", "if_statement", "for_statement",
		"for_in_statement", "while_statement", "do_statement",
		"switch_statement", "break_statement", "continue_statement",
		"throw_statement", "try_statement", "import_statement",
		"export_statement", "debugger_statement",
	),

	halOperator: tsOperators,
	halOperand:  tsOperands,
}

var tsOperators = mkset(
	"export", "import", "extends", ".", "from", "(", ",", "as", "*",
	">>", ">>>", ":", "return", "delete", "throw", "break", "continue",
	"if", "else", "switch", "case", "default", "async", "for", "in",
	"of", "while", "do", "try", "catch", "finally", "with", "=", "@", "&&",
	"||", "+", "-", "--", "++", "/", "%", "**", "|", "&", "<<", "~",
	"<", "<=", "==", "!=", ">=", ">", "+=", "!", "!==", "===", "-=",
	"*=", "/=", "%=", "**=", ">>=", ">>>=", "<<=", "&=", "^", "^=",
	"|=", "yield", "[", "{", "await", "?", "??", "new", "let", "var",
	"const", "function", ";",
)

var tsOperands = mkset(
	"identifier", "nested_identifier", "property_identifier",
	"string", "template_string", "number", "true", "false", "null",
	"void", "this", "super", "undefined", "set", "get", "typeof",
	"instanceof",
)

var tsxTable = &table{
	unit: "program",

	branch:     typescriptTable.branch,
	loop:       typescriptTable.loop,
	logicalAnd: typescriptTable.logicalAnd,
	logicalOr:  typescriptTable.logicalOr,

	cogBranch: typescriptTable.cogBranch,
	cogLoop:   typescriptTable.cogLoop,

	exit: typescriptTable.exit,

	funcs:      typescriptTable.funcs,
	closures:   typescriptTable.closures,
	types:      typescriptTable.types,
	namespaces: typescriptTable.namespaces,

	comments: typescriptTable.comments,
	strings:  typescriptTable.strings,

	calls:       typescriptTable.calls,
	assignments: typescriptTable.assignments,
	attributes:  typescriptTable.attributes,

	statements: typescriptTable.statements,

	halOperator: tsOperators,
	halOperand:  tsOperands,
}
