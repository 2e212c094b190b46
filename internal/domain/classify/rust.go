package classify

// Rust table. "||" and "/" are position-dependent (closure parameters, doc
// comment markers); HalsteadKind and LogicalKind apply the context rules.
// try_expression (`expr?`) is both a decision point and an exit point.
var rustTable = &table{
	unit: "source_file",

	branch:     mkset("if", "match_arm", "try_expression"),
	loop:       mkset("for", "while", "loop"),
	logicalAnd: mkset("&&"),
	logicalOr:  mkset("||"),

	cogBranch: mkset("if_expression", "match_expression", "try_expression"),
	cogLoop:   mkset("for_expression", "while_expression", "loop_expression"),

	exit: mkset("return_expression", "try_expression"),

	funcs:      mkset("function_item"),
	closures:   mkset("closure_expression"),
	types:      mkset("trait_item", "impl_item"),
	namespaces: mkset("mod_item"),

	comments: mkset("line_comment", "block_comment"),
	strings:  mkset("string_literal", "raw_string_literal"),

	calls: mkset("call_expression", "macro_invocation"),
	assignments: mkset(
		"assignment_expression", "compound_assignment_expr", "let_declaration",
	),
	attributes: mkset(),

	statements: mkset(
		"let_declaration", "expression_statement", "empty_statement",
		"use_declaration", "macro_invocation",
	),

	halOperator: mkset(
		"(", "{", "[", "=>", "+", "*", "async", "await", "continue",
		"for", "if", "let", "loop", "match", "return", "unsafe",
		"while", "=", ",", "->", "?", "<", ">", "&", "mutable_specifier",
		"..", "..=", "-", "&&", "|", "^", "==", "!=", "<=", ">=", "<<",
		">>", "%", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
		"<<=", ">>=", "move", ".", "primitive_type", "fn", ";",
	),
	halOperand: mkset(
		"identifier", "string_literal", "raw_string_literal",
		"integer_literal", "float_literal", "boolean_literal", "self",
		"char_literal", "_",
	),
}
