// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grammar

import "github.com/wdltools/wdl/tokens"

var nonterminals = [numNonterminals]nonterminal{
	Document: {
		name:       "document",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Import, tokens.Type),
		follow:     tokens.Set(0),
		nullable:   true,
		endFollows: true,
		rules:      []RuleID{2},
	},
	Import: {
		name:       "import",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Import),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Import, tokens.Type),
		endFollows: true,
		rules:      []RuleID{8},
	},
	ImportNamespace: {
		name:       "import_namespace",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.As),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Import, tokens.Type),
		endFollows: true,
		rules:      []RuleID{9},
	},
	WorkflowOrTaskOrDecl: {
		name:       "workflow_or_task_or_decl",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		endFollows: true,
		rules:      []RuleID{3, 4, 5},
	},
	Task: {
		name:       "task",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Task),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		endFollows: true,
		rules:      []RuleID{12},
	},
	Sections: {
		name:   "sections",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{13, 14, 15, 16, 17},
	},
	Command: {
		name:   "command",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Command),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{19},
	},
	CommandPart: {
		name:   "command_part",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.CmdPart, tokens.CmdParamStart),
		follow: tokens.NewSet(tokens.CommandEnd, tokens.CmdPart, tokens.CmdParamStart),
		rules:  []RuleID{20, 21},
	},
	CmdParam: {
		name:   "cmd_param",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.CmdParamStart),
		follow: tokens.NewSet(tokens.CommandEnd, tokens.CmdPart, tokens.CmdParamStart),
		rules:  []RuleID{23},
	},
	CmdParamKv: {
		name:   "cmd_param_kv",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.CmdAttrHint),
		follow: tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.CmdAttrHint, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		rules:  []RuleID{24},
	},
	Outputs: {
		name:   "outputs",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Output),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{26},
	},
	OutputKv: {
		name:   "output_kv",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Type),
		follow: tokens.NewSet(tokens.Type, tokens.Rbrace),
		rules:  []RuleID{27},
	},
	Runtime: {
		name:   "runtime",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Runtime),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{28},
	},
	ParameterMeta: {
		name:   "parameter_meta",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.ParameterMeta),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{29},
	},
	Meta: {
		name:   "meta",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Meta),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{30},
	},
	Map: {
		name:   "map",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Lbrace),
		follow: tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Rbrace),
		rules:  []RuleID{32},
	},
	Kv: {
		name:   "kv",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Identifier),
		follow: tokens.NewSet(tokens.Identifier, tokens.Rbrace),
		rules:  []RuleID{33},
	},
	Declaration: {
		name:       "declaration",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Type),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Call, tokens.Command, tokens.Input, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Type, tokens.Rbrace),
		endFollows: true,
		rules:      []RuleID{38},
	},
	Setter: {
		name:       "setter",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Equal),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Call, tokens.Command, tokens.Input, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Type, tokens.Rbrace),
		endFollows: true,
		rules:      []RuleID{39},
	},
	PostfixQuantifier: {
		name:   "postfix_quantifier",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Qmark, tokens.Plus),
		follow: tokens.NewSet(tokens.Identifier),
		rules:  []RuleID{40, 41},
	},
	MapKv: {
		name:   "map_kv",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		follow: tokens.NewSet(tokens.Rbrace, tokens.Comma),
		rules:  []RuleID{42},
	},
	Workflow: {
		name:       "workflow",
		kind:       Fixed,
		first:      tokens.NewSet(tokens.Workflow),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		endFollows: true,
		rules:      []RuleID{44},
	},
	WfBodyElement: {
		name:   "wf_body_element",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{45, 46, 47, 48, 49, 50},
	},
	Call: {
		name:   "call",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Call),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{55},
	},
	CallBody: {
		name:   "call_body",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Lbrace),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{57},
	},
	CallInput: {
		name:   "call_input",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Input),
		follow: tokens.NewSet(tokens.Input, tokens.Rbrace),
		rules:  []RuleID{59},
	},
	Mapping: {
		name:   "mapping",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Identifier),
		follow: tokens.NewSet(tokens.Input, tokens.Rbrace, tokens.Comma),
		rules:  []RuleID{60},
	},
	Alias: {
		name:   "alias",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.As),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Lbrace, tokens.Rbrace),
		rules:  []RuleID{61},
	},
	WfOutputs: {
		name:   "wf_outputs",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Output),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{63},
	},
	WfOutput: {
		name:   "wf_output",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Fqn),
		follow: tokens.NewSet(tokens.Fqn, tokens.Rbrace),
		rules:  []RuleID{66},
	},
	WfOutputWildcard: {
		name:   "wf_output_wildcard",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Dot),
		follow: tokens.NewSet(tokens.Fqn, tokens.Rbrace),
		rules:  []RuleID{67},
	},
	WhileLoop: {
		name:   "while_loop",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.While),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{68},
	},
	IfStmt: {
		name:   "if_stmt",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.If),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{69},
	},
	Scatter: {
		name:   "scatter",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Scatter),
		follow: tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		rules:  []RuleID{70},
	},
	ObjectKv: {
		name:   "object_kv",
		kind:   Fixed,
		first:  tokens.NewSet(tokens.Identifier),
		follow: tokens.NewSet(tokens.Rbrace, tokens.Comma),
		rules:  []RuleID{71},
	},
	TypeE: {
		name:   "type_e",
		kind:   Expression,
		first:  tokens.NewSet(tokens.Type),
		follow: tokens.NewSet(tokens.Identifier, tokens.Rsquare, tokens.Comma, tokens.Qmark, tokens.Plus),
		rules:  []RuleID{73, 74},
	},
	E: {
		name:       "e",
		kind:       Expression,
		first:      tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Call, tokens.Command, tokens.Input, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Type, tokens.Identifier, tokens.CmdParamEnd, tokens.CmdAttrHint, tokens.Lbrace, tokens.Rbrace, tokens.Lparen, tokens.Rparen, tokens.Lsquare, tokens.Rsquare, tokens.Comma, tokens.Colon, tokens.Plus, tokens.Dash, tokens.Asterisk, tokens.Slash, tokens.Percent, tokens.Not, tokens.DoubleEqual, tokens.NotEqual, tokens.Lt, tokens.Lteq, tokens.Gt, tokens.Gteq, tokens.DoublePipe, tokens.DoubleAmpersand),
		endFollows: true,
		rules:      []RuleID{75, 76, 77, 78, 79, 80, 81, 82, 83, 84, 85, 86, 87, 88, 89, 90, 92, 93, 94, 96, 97, 99, 100, 101, 102, 103, 104, 105},
	},
	Gen0: {
		name:       "_gen0",
		kind:       List,
		first:      tokens.NewSet(tokens.Import),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		nullable:   true,
		endFollows: true,
		rules:      []RuleID{0},
		element:    Import,
	},
	Gen1: {
		name:       "_gen1",
		kind:       List,
		first:      tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		follow:     tokens.Set(0),
		nullable:   true,
		endFollows: true,
		rules:      []RuleID{1},
		element:    WorkflowOrTaskOrDecl,
	},
	Gen2: {
		name:       "_gen2",
		kind:       Optional,
		first:      tokens.NewSet(tokens.As),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Import, tokens.Type),
		nullable:   true,
		endFollows: true,
		rules:      []RuleID{6, 7},
	},
	Gen3: {
		name:     "_gen3",
		kind:     List,
		first:    tokens.NewSet(tokens.Type),
		follow:   tokens.NewSet(tokens.Command, tokens.Input, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta),
		nullable: true,
		rules:    []RuleID{10},
		element:  Declaration,
	},
	Gen4: {
		name:     "_gen4",
		kind:     List,
		first:    tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{11},
		element:  Sections,
	},
	Gen5: {
		name:     "_gen5",
		kind:     List,
		first:    tokens.NewSet(tokens.CmdPart, tokens.CmdParamStart),
		follow:   tokens.NewSet(tokens.CommandEnd),
		nullable: true,
		rules:    []RuleID{18},
		element:  CommandPart,
	},
	Gen6: {
		name:     "_gen6",
		kind:     List,
		first:    tokens.NewSet(tokens.CmdAttrHint),
		follow:   tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		nullable: true,
		rules:    []RuleID{22},
		element:  CmdParamKv,
	},
	Gen7: {
		name:     "_gen7",
		kind:     List,
		first:    tokens.NewSet(tokens.Type),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{25},
		element:  OutputKv,
	},
	Gen8: {
		name:     "_gen8",
		kind:     List,
		first:    tokens.NewSet(tokens.Identifier),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{31},
		element:  Kv,
	},
	Gen9: {
		name:     "_gen9",
		kind:     Optional,
		first:    tokens.NewSet(tokens.Qmark, tokens.Plus),
		follow:   tokens.NewSet(tokens.Identifier),
		nullable: true,
		rules:    []RuleID{34, 35},
	},
	Gen10: {
		name:       "_gen10",
		kind:       Optional,
		first:      tokens.NewSet(tokens.Equal),
		follow:     tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Call, tokens.Command, tokens.Input, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Runtime, tokens.Meta, tokens.ParameterMeta, tokens.Type, tokens.Rbrace),
		nullable:   true,
		endFollows: true,
		rules:      []RuleID{36, 37},
	},
	Gen11: {
		name:     "_gen11",
		kind:     List,
		first:    tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{43},
		element:  WfBodyElement,
	},
	Gen12: {
		name:     "_gen12",
		kind:     Optional,
		first:    tokens.NewSet(tokens.As),
		follow:   tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Lbrace, tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{51, 52},
	},
	Gen13: {
		name:     "_gen13",
		kind:     Optional,
		first:    tokens.NewSet(tokens.Lbrace),
		follow:   tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type, tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{53, 54},
	},
	Gen14: {
		name:     "_gen14",
		kind:     List,
		first:    tokens.NewSet(tokens.Input),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{56},
		element:  CallInput,
	},
	Gen15: {
		name:         "_gen15",
		kind:         List,
		first:        tokens.NewSet(tokens.Identifier),
		follow:       tokens.NewSet(tokens.Input, tokens.Rbrace),
		nullable:     true,
		rules:        []RuleID{58},
		element:      Mapping,
		separator:    tokens.Comma,
		hasSeparator: true,
	},
	Gen16: {
		name:     "_gen16",
		kind:     List,
		first:    tokens.NewSet(tokens.Fqn),
		follow:   tokens.NewSet(tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{62},
		element:  WfOutput,
	},
	Gen17: {
		name:     "_gen17",
		kind:     Optional,
		first:    tokens.NewSet(tokens.Dot),
		follow:   tokens.NewSet(tokens.Fqn, tokens.Rbrace),
		nullable: true,
		rules:    []RuleID{64, 65},
	},
	Gen18: {
		name:         "_gen18",
		kind:         List,
		first:        tokens.NewSet(tokens.Type),
		follow:       tokens.NewSet(tokens.Rsquare),
		nullable:     true,
		rules:        []RuleID{72},
		element:      TypeE,
		separator:    tokens.Comma,
		hasSeparator: true,
	},
	Gen19: {
		name:         "_gen19",
		kind:         List,
		first:        tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		follow:       tokens.NewSet(tokens.Rparen, tokens.Rsquare),
		nullable:     true,
		rules:        []RuleID{91},
		element:      E,
		separator:    tokens.Comma,
		hasSeparator: true,
	},
	Gen20: {
		name:         "_gen20",
		kind:         List,
		first:        tokens.NewSet(tokens.Identifier),
		follow:       tokens.NewSet(tokens.Rbrace),
		nullable:     true,
		rules:        []RuleID{95},
		element:      ObjectKv,
		separator:    tokens.Comma,
		hasSeparator: true,
	},
	Gen21: {
		name:         "_gen21",
		kind:         List,
		first:        tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		follow:       tokens.NewSet(tokens.Rbrace),
		nullable:     true,
		rules:        []RuleID{98},
		element:      MapKv,
		separator:    tokens.Comma,
		hasSeparator: true,
	},
}

// parseTable lists, per nonterminal, the rule selected by each lookahead
// terminal. Repetitions and expressions are not table driven and have no row.
var parseTable = map[Nonterminal]map[tokens.Kind]RuleID{
	Document: {
		tokens.Import:   2,
		tokens.Task:     2,
		tokens.Type:     2,
		tokens.Workflow: 2,
	},
	Import: {
		tokens.Import: 8,
	},
	ImportNamespace: {
		tokens.As: 9,
	},
	WorkflowOrTaskOrDecl: {
		tokens.Workflow: 3,
		tokens.Task:     4,
		tokens.Type:     5,
	},
	Task: {
		tokens.Task: 12,
	},
	Sections: {
		tokens.Command:       13,
		tokens.Output:        14,
		tokens.Runtime:       15,
		tokens.ParameterMeta: 16,
		tokens.Meta:          17,
	},
	Command: {
		tokens.Command: 19,
	},
	CommandPart: {
		tokens.CmdPart:       20,
		tokens.CmdParamStart: 21,
	},
	CmdParam: {
		tokens.CmdParamStart: 23,
	},
	CmdParamKv: {
		tokens.CmdAttrHint: 24,
	},
	Outputs: {
		tokens.Output: 26,
	},
	OutputKv: {
		tokens.Type: 27,
	},
	Runtime: {
		tokens.Runtime: 28,
	},
	ParameterMeta: {
		tokens.ParameterMeta: 29,
	},
	Meta: {
		tokens.Meta: 30,
	},
	Map: {
		tokens.Lbrace: 32,
	},
	Kv: {
		tokens.Identifier: 33,
	},
	Declaration: {
		tokens.Type: 38,
	},
	Setter: {
		tokens.Equal: 39,
	},
	PostfixQuantifier: {
		tokens.Qmark: 40,
		tokens.Plus:  41,
	},
	MapKv: {
		tokens.Boolean:    42,
		tokens.Dash:       42,
		tokens.Float:      42,
		tokens.Identifier: 42,
		tokens.Integer:    42,
		tokens.Lbrace:     42,
		tokens.Lparen:     42,
		tokens.Lsquare:    42,
		tokens.Not:        42,
		tokens.Object:     42,
		tokens.Plus:       42,
		tokens.String:     42,
	},
	Workflow: {
		tokens.Workflow: 44,
	},
	WfBodyElement: {
		tokens.Call:    45,
		tokens.Type:    46,
		tokens.While:   47,
		tokens.If:      48,
		tokens.Scatter: 49,
		tokens.Output:  50,
	},
	Call: {
		tokens.Call: 55,
	},
	CallBody: {
		tokens.Lbrace: 57,
	},
	CallInput: {
		tokens.Input: 59,
	},
	Mapping: {
		tokens.Identifier: 60,
	},
	Alias: {
		tokens.As: 61,
	},
	WfOutputs: {
		tokens.Output: 63,
	},
	WfOutput: {
		tokens.Fqn: 66,
	},
	WfOutputWildcard: {
		tokens.Dot: 67,
	},
	WhileLoop: {
		tokens.While: 68,
	},
	IfStmt: {
		tokens.If: 69,
	},
	Scatter: {
		tokens.Scatter: 70,
	},
	ObjectKv: {
		tokens.Identifier: 71,
	},
	Gen2: {
		tokens.As:       6,
		tokens.Import:   7,
		tokens.Task:     7,
		tokens.Type:     7,
		tokens.Workflow: 7,
	},
	Gen9: {
		tokens.Plus:       34,
		tokens.Qmark:      34,
		tokens.Identifier: 35,
	},
	Gen10: {
		tokens.Equal:         36,
		tokens.Call:          37,
		tokens.Command:       37,
		tokens.If:            37,
		tokens.Input:         37,
		tokens.Meta:          37,
		tokens.Output:        37,
		tokens.ParameterMeta: 37,
		tokens.Rbrace:        37,
		tokens.Runtime:       37,
		tokens.Scatter:       37,
		tokens.Task:          37,
		tokens.Type:          37,
		tokens.While:         37,
		tokens.Workflow:      37,
	},
	Gen12: {
		tokens.As:      51,
		tokens.Call:    52,
		tokens.If:      52,
		tokens.Lbrace:  52,
		tokens.Output:  52,
		tokens.Rbrace:  52,
		tokens.Scatter: 52,
		tokens.Type:    52,
		tokens.While:   52,
	},
	Gen13: {
		tokens.Lbrace:  53,
		tokens.Call:    54,
		tokens.If:      54,
		tokens.Output:  54,
		tokens.Rbrace:  54,
		tokens.Scatter: 54,
		tokens.Type:    54,
		tokens.While:   54,
	},
	Gen17: {
		tokens.Dot:    64,
		tokens.Fqn:    65,
		tokens.Rbrace: 65,
	},
}
