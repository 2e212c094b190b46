package classify

// Go table. A switch contributes through its case clauses, not the switch
// itself. Go has no type spaces: methods hang off the unit, mirroring how the
// language scatters them across the file.
var goTable = &table{
	unit: "source_file",

	branch: mkset(
		"if", "expression_case", "default_case", "type_case",
		"communication_case",
	),
	loop:       mkset("for"),
	logicalAnd: mkset("&&"),
	logicalOr:  mkset("||"),

	cogBranch: mkset(
		"if_statement", "expression_switch_statement",
		"type_switch_statement", "select_statement",
	),
	cogLoop: mkset("for_statement"),

	exit: mkset("return_statement"),

	funcs:      mkset("function_declaration", "method_declaration"),
	closures:   mkset("func_literal"),
	types:      mkset(),
	namespaces: mkset(),

	comments: mkset("comment"),
	strings:  mkset("interpreted_string_literal", "raw_string_literal"),

	calls: mkset("call_expression"),
	assignments: mkset(
		"assignment_statement", "short_var_declaration", "var_declaration",
		"const_declaration", "inc_statement", "dec_statement",
	),
	attributes: mkset(),

	statements: mkset(
		"expression_statement", "send_statement", "inc_statement",
		"dec_statement", "assignment_statement", "short_var_declaration",
		"var_declaration", "const_declaration", "return_statement",
		"go_statement", "defer_statement", "if_statement", "for_statement",
		"expression_switch_statement", "type_switch_statement",
		"select_statement", "break_statement", "continue_statement",
		"goto_statement", "fallthrough_statement", "labeled_statement",
	),

	halOperator: mkset(
		"func", "go", "defer", "return", "if", "else", "for", "range",
		"switch", "select", "case", "default", "break", "continue",
		"goto", "fallthrough", "chan", "map", "struct", "interface",
		"type", "var", "const", "package", "import",
		".", ",", ";", ":", ":=", "=",
		"+=", "-=", "*=", "/=", "%=",
		"&=", "|=", "^=", "<<=", ">>=", "&^=",
		"+", "-", "*", "/", "%", "&", "|", "^", "<<", ">>",
		"&&", "||", "&^", "++", "--",
		"==", "!=", "<", "<=", ">", ">=", "!",
		"(", "[", "{", "...",
	),
	halOperand: mkset(
		"identifier", "int_literal", "float_literal", "imaginary_literal",
		"rune_literal", "raw_string_literal", "interpreted_string_literal",
		"true", "false", "nil", "iota",
	),
}
