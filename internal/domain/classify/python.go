package classify

// Python table. Control-flow decision points follow the keyword tokens of the
// tree-sitter-python grammar, so ternaries and comprehension guards count
// through their "if" token just like statements do.
var pythonTable = &table{
	unit: "module",

	branch:     mkset("if", "elif", "except", "with", "assert"),
	loop:       mkset("for", "while"),
	logicalAnd: mkset("and"),
	logicalOr:  mkset("or"),

	cogBranch: mkset("if_statement", "conditional_expression", "except_clause", "case_clause"),
	cogLoop:   mkset("for_statement", "while_statement"),

	exit: mkset("return_statement"),

	funcs:      mkset("function_definition"),
	closures:   mkset("lambda"),
	types:      mkset("class_definition"),
	namespaces: mkset(),

	comments: mkset("comment"),
	strings:  mkset("string", "concatenated_string"),

	calls:       mkset("call"),
	assignments: mkset("assignment", "augmented_assignment", "named_expression"),
	attributes:  mkset("assignment"),

	statements: mkset(
		"expression_statement", "return_statement", "pass_statement",
		"break_statement", "continue_statement", "delete_statement",
		"raise_statement", "assert_statement", "import_statement",
		"import_from_statement", "future_import_statement",
		"global_statement", "nonlocal_statement", "exec_statement",
		"print_statement", "if_statement", "for_statement",
		"while_statement", "try_statement", "with_statement",
		"match_statement",
	),

	halOperator: mkset(
		"import", ".", "from", ",", "as", "*", ">>", "assert", ":=",
		"return", "def", "del", "raise", "pass", "break", "continue",
		"if", "elif", "else", "async", "for", "in", "while", "try",
		"except", "finally", "with", "->", "=", "global", "exec", "@",
		"not", "and", "or", "+", "-", "/", "%", "//", "**", "|", "&",
		"^", "<<", "~", "<", "<=", "==", "!=", ">=", ">", "<>", "is",
		"+=", "-=", "*=", "/=", "@=", "//=", "%=", "**=", ">>=", "<<=",
		"&=", "^=", "|=", "yield", "await", "print",
	),
	// "string" joins via the docstring context rule in HalsteadKind.
	halOperand: mkset("identifier", "integer", "float", "true", "false", "none"),
}
