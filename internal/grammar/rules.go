// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grammar

import "github.com/wdltools/wdl/tokens"

// rules is indexed by RuleID.
var rules = []Rule{
	{
		ID:          0,
		Nonterminal: Gen0,
		Text:        "$_gen0 = list($import)",
		First:       tokens.NewSet(tokens.Import),
		Nullable:    true,
	},
	{
		ID:          1,
		Nonterminal: Gen1,
		Text:        "$_gen1 = list($workflow_or_task_or_decl)",
		First:       tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Type),
		Nullable:    true,
	},
	{
		ID:          2,
		Nonterminal: Document,
		Text:        "$document = $_gen0 $_gen1 -> Namespace( imports=$0, body=$1 )",
		First:       tokens.NewSet(tokens.Workflow, tokens.Task, tokens.Import, tokens.Type),
		Nullable:    true,
		RHS:         []Symbol{N(Gen0), N(Gen1)},
		Transform:   NodeCreator{Name: "Namespace", Params: []Param{{Name: "imports", Index: 0}, {Name: "body", Index: 1}}},
	},
	{
		ID:          3,
		Nonterminal: WorkflowOrTaskOrDecl,
		Text:        "$workflow_or_task_or_decl = $workflow",
		First:       tokens.NewSet(tokens.Workflow),
		RHS:         []Symbol{N(Workflow)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          4,
		Nonterminal: WorkflowOrTaskOrDecl,
		Text:        "$workflow_or_task_or_decl = $task",
		First:       tokens.NewSet(tokens.Task),
		RHS:         []Symbol{N(Task)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          5,
		Nonterminal: WorkflowOrTaskOrDecl,
		Text:        "$workflow_or_task_or_decl = $declaration",
		First:       tokens.NewSet(tokens.Type),
		RHS:         []Symbol{N(Declaration)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          6,
		Nonterminal: Gen2,
		Text:        "$_gen2 = $import_namespace",
		First:       tokens.NewSet(tokens.As),
		RHS:         []Symbol{N(ImportNamespace)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          7,
		Nonterminal: Gen2,
		Text:        "$_gen2 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          8,
		Nonterminal: Import,
		Text:        "$import = :import :string $_gen2 -> Import( uri=$1, namespace=$2 )",
		First:       tokens.NewSet(tokens.Import),
		RHS:         []Symbol{T(tokens.Import), T(tokens.String), N(Gen2)},
		Transform:   NodeCreator{Name: "Import", Params: []Param{{Name: "uri", Index: 1}, {Name: "namespace", Index: 2}}},
	},
	{
		ID:          9,
		Nonterminal: ImportNamespace,
		Text:        "$import_namespace = :as :identifier -> $1",
		First:       tokens.NewSet(tokens.As),
		RHS:         []Symbol{T(tokens.As), T(tokens.Identifier)},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          10,
		Nonterminal: Gen3,
		Text:        "$_gen3 = list($declaration)",
		First:       tokens.NewSet(tokens.Type),
		Nullable:    true,
	},
	{
		ID:          11,
		Nonterminal: Gen4,
		Text:        "$_gen4 = list($sections)",
		First:       tokens.NewSet(tokens.Command, tokens.Output, tokens.Runtime, tokens.Meta, tokens.ParameterMeta),
		Nullable:    true,
	},
	{
		ID:          12,
		Nonterminal: Task,
		Text:        "$task = :task :identifier :lbrace $_gen3 $_gen4 :rbrace -> Task( name=$1, declarations=$3, sections=$4 )",
		First:       tokens.NewSet(tokens.Task),
		RHS:         []Symbol{T(tokens.Task), T(tokens.Identifier), T(tokens.Lbrace), N(Gen3), N(Gen4), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "Task", Params: []Param{{Name: "name", Index: 1}, {Name: "declarations", Index: 3}, {Name: "sections", Index: 4}}},
	},
	{
		ID:          13,
		Nonterminal: Sections,
		Text:        "$sections = $command",
		First:       tokens.NewSet(tokens.Command),
		RHS:         []Symbol{N(Command)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          14,
		Nonterminal: Sections,
		Text:        "$sections = $outputs",
		First:       tokens.NewSet(tokens.Output),
		RHS:         []Symbol{N(Outputs)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          15,
		Nonterminal: Sections,
		Text:        "$sections = $runtime",
		First:       tokens.NewSet(tokens.Runtime),
		RHS:         []Symbol{N(Runtime)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          16,
		Nonterminal: Sections,
		Text:        "$sections = $parameter_meta",
		First:       tokens.NewSet(tokens.ParameterMeta),
		RHS:         []Symbol{N(ParameterMeta)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          17,
		Nonterminal: Sections,
		Text:        "$sections = $meta",
		First:       tokens.NewSet(tokens.Meta),
		RHS:         []Symbol{N(Meta)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          18,
		Nonterminal: Gen5,
		Text:        "$_gen5 = list($command_part)",
		First:       tokens.NewSet(tokens.CmdPart, tokens.CmdParamStart),
		Nullable:    true,
	},
	{
		ID:          19,
		Nonterminal: Command,
		Text:        "$command = :command :command_start $_gen5 :command_end -> RawCommand( parts=$2 )",
		First:       tokens.NewSet(tokens.Command),
		RHS:         []Symbol{T(tokens.Command), T(tokens.CommandStart), N(Gen5), T(tokens.CommandEnd)},
		Transform:   NodeCreator{Name: "RawCommand", Params: []Param{{Name: "parts", Index: 2}}},
	},
	{
		ID:          20,
		Nonterminal: CommandPart,
		Text:        "$command_part = :cmd_part",
		First:       tokens.NewSet(tokens.CmdPart),
		RHS:         []Symbol{T(tokens.CmdPart)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          21,
		Nonterminal: CommandPart,
		Text:        "$command_part = $cmd_param",
		First:       tokens.NewSet(tokens.CmdParamStart),
		RHS:         []Symbol{N(CmdParam)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          22,
		Nonterminal: Gen6,
		Text:        "$_gen6 = list($cmd_param_kv)",
		First:       tokens.NewSet(tokens.CmdAttrHint),
		Nullable:    true,
	},
	{
		ID:          23,
		Nonterminal: CmdParam,
		Text:        "$cmd_param = :cmd_param_start $_gen6 $e :cmd_param_end -> CommandParameter( attributes=$1, expr=$2 )",
		First:       tokens.NewSet(tokens.CmdParamStart),
		RHS:         []Symbol{T(tokens.CmdParamStart), N(Gen6), N(E), T(tokens.CmdParamEnd)},
		Transform:   NodeCreator{Name: "CommandParameter", Params: []Param{{Name: "attributes", Index: 1}, {Name: "expr", Index: 2}}},
	},
	{
		ID:          24,
		Nonterminal: CmdParamKv,
		Text:        "$cmd_param_kv = :cmd_attr_hint :identifier :equal $e -> CommandParameterAttr( key=$1, value=$3 )",
		First:       tokens.NewSet(tokens.CmdAttrHint),
		RHS:         []Symbol{T(tokens.CmdAttrHint), T(tokens.Identifier), T(tokens.Equal), N(E)},
		Transform:   NodeCreator{Name: "CommandParameterAttr", Params: []Param{{Name: "key", Index: 1}, {Name: "value", Index: 3}}},
	},
	{
		ID:          25,
		Nonterminal: Gen7,
		Text:        "$_gen7 = list($output_kv)",
		First:       tokens.NewSet(tokens.Type),
		Nullable:    true,
	},
	{
		ID:          26,
		Nonterminal: Outputs,
		Text:        "$outputs = :output :lbrace $_gen7 :rbrace -> Outputs( attributes=$2 )",
		First:       tokens.NewSet(tokens.Output),
		RHS:         []Symbol{T(tokens.Output), T(tokens.Lbrace), N(Gen7), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "Outputs", Params: []Param{{Name: "attributes", Index: 2}}},
	},
	{
		ID:          27,
		Nonterminal: OutputKv,
		Text:        "$output_kv = $type_e :identifier :equal $e -> Output( type=$0, name=$1, expression=$3 )",
		First:       tokens.NewSet(tokens.Type),
		RHS:         []Symbol{N(TypeE), T(tokens.Identifier), T(tokens.Equal), N(E)},
		Transform:   NodeCreator{Name: "Output", Params: []Param{{Name: "type", Index: 0}, {Name: "name", Index: 1}, {Name: "expression", Index: 3}}},
	},
	{
		ID:          28,
		Nonterminal: Runtime,
		Text:        "$runtime = :runtime $map -> Runtime( map=$1 )",
		First:       tokens.NewSet(tokens.Runtime),
		RHS:         []Symbol{T(tokens.Runtime), N(Map)},
		Transform:   NodeCreator{Name: "Runtime", Params: []Param{{Name: "map", Index: 1}}},
	},
	{
		ID:          29,
		Nonterminal: ParameterMeta,
		Text:        "$parameter_meta = :parameter_meta $map -> ParameterMeta( map=$1 )",
		First:       tokens.NewSet(tokens.ParameterMeta),
		RHS:         []Symbol{T(tokens.ParameterMeta), N(Map)},
		Transform:   NodeCreator{Name: "ParameterMeta", Params: []Param{{Name: "map", Index: 1}}},
	},
	{
		ID:          30,
		Nonterminal: Meta,
		Text:        "$meta = :meta $map -> Meta( map=$1 )",
		First:       tokens.NewSet(tokens.Meta),
		RHS:         []Symbol{T(tokens.Meta), N(Map)},
		Transform:   NodeCreator{Name: "Meta", Params: []Param{{Name: "map", Index: 1}}},
	},
	{
		ID:          31,
		Nonterminal: Gen8,
		Text:        "$_gen8 = list($kv)",
		First:       tokens.NewSet(tokens.Identifier),
		Nullable:    true,
	},
	{
		ID:          32,
		Nonterminal: Map,
		Text:        "$map = :lbrace $_gen8 :rbrace -> $1",
		First:       tokens.NewSet(tokens.Lbrace),
		RHS:         []Symbol{T(tokens.Lbrace), N(Gen8), T(tokens.Rbrace)},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          33,
		Nonterminal: Kv,
		Text:        "$kv = :identifier :colon $e -> RuntimeAttribute( key=$0, value=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		RHS:         []Symbol{T(tokens.Identifier), T(tokens.Colon), N(E)},
		Transform:   NodeCreator{Name: "RuntimeAttribute", Params: []Param{{Name: "key", Index: 0}, {Name: "value", Index: 2}}},
	},
	{
		ID:          34,
		Nonterminal: Gen9,
		Text:        "$_gen9 = $postfix_quantifier",
		First:       tokens.NewSet(tokens.Qmark, tokens.Plus),
		RHS:         []Symbol{N(PostfixQuantifier)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          35,
		Nonterminal: Gen9,
		Text:        "$_gen9 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          36,
		Nonterminal: Gen10,
		Text:        "$_gen10 = $setter",
		First:       tokens.NewSet(tokens.Equal),
		RHS:         []Symbol{N(Setter)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          37,
		Nonterminal: Gen10,
		Text:        "$_gen10 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          38,
		Nonterminal: Declaration,
		Text:        "$declaration = $type_e $_gen9 :identifier $_gen10 -> Declaration( type=$0, postfix=$1, name=$2, expression=$3 )",
		First:       tokens.NewSet(tokens.Type),
		RHS:         []Symbol{N(TypeE), N(Gen9), T(tokens.Identifier), N(Gen10)},
		Transform:   NodeCreator{Name: "Declaration", Params: []Param{{Name: "type", Index: 0}, {Name: "postfix", Index: 1}, {Name: "name", Index: 2}, {Name: "expression", Index: 3}}},
	},
	{
		ID:          39,
		Nonterminal: Setter,
		Text:        "$setter = :equal $e -> $1",
		First:       tokens.NewSet(tokens.Equal),
		RHS:         []Symbol{T(tokens.Equal), N(E)},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          40,
		Nonterminal: PostfixQuantifier,
		Text:        "$postfix_quantifier = :qmark",
		First:       tokens.NewSet(tokens.Qmark),
		RHS:         []Symbol{T(tokens.Qmark)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          41,
		Nonterminal: PostfixQuantifier,
		Text:        "$postfix_quantifier = :plus",
		First:       tokens.NewSet(tokens.Plus),
		RHS:         []Symbol{T(tokens.Plus)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          42,
		Nonterminal: MapKv,
		Text:        "$map_kv = $e :colon $e -> MapLiteralKv( key=$0, value=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		RHS:         []Symbol{N(E), T(tokens.Colon), N(E)},
		Transform:   NodeCreator{Name: "MapLiteralKv", Params: []Param{{Name: "key", Index: 0}, {Name: "value", Index: 2}}},
	},
	{
		ID:          43,
		Nonterminal: Gen11,
		Text:        "$_gen11 = list($wf_body_element)",
		First:       tokens.NewSet(tokens.Call, tokens.Output, tokens.If, tokens.While, tokens.Scatter, tokens.Type),
		Nullable:    true,
	},
	{
		ID:          44,
		Nonterminal: Workflow,
		Text:        "$workflow = :workflow :identifier :lbrace $_gen11 :rbrace -> Workflow( name=$1, body=$3 )",
		First:       tokens.NewSet(tokens.Workflow),
		RHS:         []Symbol{T(tokens.Workflow), T(tokens.Identifier), T(tokens.Lbrace), N(Gen11), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "Workflow", Params: []Param{{Name: "name", Index: 1}, {Name: "body", Index: 3}}},
	},
	{
		ID:          45,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $call",
		First:       tokens.NewSet(tokens.Call),
		RHS:         []Symbol{N(Call)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          46,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $declaration",
		First:       tokens.NewSet(tokens.Type),
		RHS:         []Symbol{N(Declaration)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          47,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $while_loop",
		First:       tokens.NewSet(tokens.While),
		RHS:         []Symbol{N(WhileLoop)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          48,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $if_stmt",
		First:       tokens.NewSet(tokens.If),
		RHS:         []Symbol{N(IfStmt)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          49,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $scatter",
		First:       tokens.NewSet(tokens.Scatter),
		RHS:         []Symbol{N(Scatter)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          50,
		Nonterminal: WfBodyElement,
		Text:        "$wf_body_element = $wf_outputs",
		First:       tokens.NewSet(tokens.Output),
		RHS:         []Symbol{N(WfOutputs)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          51,
		Nonterminal: Gen12,
		Text:        "$_gen12 = $alias",
		First:       tokens.NewSet(tokens.As),
		RHS:         []Symbol{N(Alias)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          52,
		Nonterminal: Gen12,
		Text:        "$_gen12 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          53,
		Nonterminal: Gen13,
		Text:        "$_gen13 = $call_body",
		First:       tokens.NewSet(tokens.Lbrace),
		RHS:         []Symbol{N(CallBody)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          54,
		Nonterminal: Gen13,
		Text:        "$_gen13 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          55,
		Nonterminal: Call,
		Text:        "$call = :call :fqn $_gen12 $_gen13 -> Call( task=$1, alias=$2, body=$3 )",
		First:       tokens.NewSet(tokens.Call),
		RHS:         []Symbol{T(tokens.Call), T(tokens.Fqn), N(Gen12), N(Gen13)},
		Transform:   NodeCreator{Name: "Call", Params: []Param{{Name: "task", Index: 1}, {Name: "alias", Index: 2}, {Name: "body", Index: 3}}},
	},
	{
		ID:          56,
		Nonterminal: Gen14,
		Text:        "$_gen14 = list($call_input)",
		First:       tokens.NewSet(tokens.Input),
		Nullable:    true,
	},
	{
		ID:          57,
		Nonterminal: CallBody,
		Text:        "$call_body = :lbrace $_gen3 $_gen14 :rbrace -> CallBody( declarations=$1, io=$2 )",
		First:       tokens.NewSet(tokens.Lbrace),
		RHS:         []Symbol{T(tokens.Lbrace), N(Gen3), N(Gen14), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "CallBody", Params: []Param{{Name: "declarations", Index: 1}, {Name: "io", Index: 2}}},
	},
	{
		ID:          58,
		Nonterminal: Gen15,
		Text:        "$_gen15 = list($mapping, :comma)",
		First:       tokens.NewSet(tokens.Identifier),
		Nullable:    true,
	},
	{
		ID:          59,
		Nonterminal: CallInput,
		Text:        "$call_input = :input :colon $_gen15 -> Inputs( map=$2 )",
		First:       tokens.NewSet(tokens.Input),
		RHS:         []Symbol{T(tokens.Input), T(tokens.Colon), N(Gen15)},
		Transform:   NodeCreator{Name: "Inputs", Params: []Param{{Name: "map", Index: 2}}},
	},
	{
		ID:          60,
		Nonterminal: Mapping,
		Text:        "$mapping = :identifier :equal $e -> IOMapping( key=$0, value=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		RHS:         []Symbol{T(tokens.Identifier), T(tokens.Equal), N(E)},
		Transform:   NodeCreator{Name: "IOMapping", Params: []Param{{Name: "key", Index: 0}, {Name: "value", Index: 2}}},
	},
	{
		ID:          61,
		Nonterminal: Alias,
		Text:        "$alias = :as :identifier -> $1",
		First:       tokens.NewSet(tokens.As),
		RHS:         []Symbol{T(tokens.As), T(tokens.Identifier)},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          62,
		Nonterminal: Gen16,
		Text:        "$_gen16 = list($wf_output)",
		First:       tokens.NewSet(tokens.Fqn),
		Nullable:    true,
	},
	{
		ID:          63,
		Nonterminal: WfOutputs,
		Text:        "$wf_outputs = :output :lbrace $_gen16 :rbrace -> WorkflowOutputs( outputs=$2 )",
		First:       tokens.NewSet(tokens.Output),
		RHS:         []Symbol{T(tokens.Output), T(tokens.Lbrace), N(Gen16), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "WorkflowOutputs", Params: []Param{{Name: "outputs", Index: 2}}},
	},
	{
		ID:          64,
		Nonterminal: Gen17,
		Text:        "$_gen17 = $wf_output_wildcard",
		First:       tokens.NewSet(tokens.Dot),
		RHS:         []Symbol{N(WfOutputWildcard)},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          65,
		Nonterminal: Gen17,
		Text:        "$_gen17 = :_empty",
		First:       tokens.Set(0),
		Nullable:    true,
	},
	{
		ID:          66,
		Nonterminal: WfOutput,
		Text:        "$wf_output = :fqn $_gen17 -> WorkflowOutput( fqn=$0, wildcard=$1 )",
		First:       tokens.NewSet(tokens.Fqn),
		RHS:         []Symbol{T(tokens.Fqn), N(Gen17)},
		Transform:   NodeCreator{Name: "WorkflowOutput", Params: []Param{{Name: "fqn", Index: 0}, {Name: "wildcard", Index: 1}}},
	},
	{
		ID:          67,
		Nonterminal: WfOutputWildcard,
		Text:        "$wf_output_wildcard = :dot :asterisk -> $1",
		First:       tokens.NewSet(tokens.Dot),
		RHS:         []Symbol{T(tokens.Dot), T(tokens.Asterisk)},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          68,
		Nonterminal: WhileLoop,
		Text:        "$while_loop = :while :lparen $e :rparen :lbrace $_gen11 :rbrace -> WhileLoop( expression=$2, body=$5 )",
		First:       tokens.NewSet(tokens.While),
		RHS:         []Symbol{T(tokens.While), T(tokens.Lparen), N(E), T(tokens.Rparen), T(tokens.Lbrace), N(Gen11), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "WhileLoop", Params: []Param{{Name: "expression", Index: 2}, {Name: "body", Index: 5}}},
	},
	{
		ID:          69,
		Nonterminal: IfStmt,
		Text:        "$if_stmt = :if :lparen $e :rparen :lbrace $_gen11 :rbrace -> If( expression=$2, body=$5 )",
		First:       tokens.NewSet(tokens.If),
		RHS:         []Symbol{T(tokens.If), T(tokens.Lparen), N(E), T(tokens.Rparen), T(tokens.Lbrace), N(Gen11), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "If", Params: []Param{{Name: "expression", Index: 2}, {Name: "body", Index: 5}}},
	},
	{
		ID:          70,
		Nonterminal: Scatter,
		Text:        "$scatter = :scatter :lparen :identifier :in $e :rparen :lbrace $_gen11 :rbrace -> Scatter( item=$2, collection=$4, body=$7 )",
		First:       tokens.NewSet(tokens.Scatter),
		RHS:         []Symbol{T(tokens.Scatter), T(tokens.Lparen), T(tokens.Identifier), T(tokens.In), N(E), T(tokens.Rparen), T(tokens.Lbrace), N(Gen11), T(tokens.Rbrace)},
		Transform:   NodeCreator{Name: "Scatter", Params: []Param{{Name: "item", Index: 2}, {Name: "collection", Index: 4}, {Name: "body", Index: 7}}},
	},
	{
		ID:          71,
		Nonterminal: ObjectKv,
		Text:        "$object_kv = :identifier :colon $e -> ObjectKV( key=$0, value=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		RHS:         []Symbol{T(tokens.Identifier), T(tokens.Colon), N(E)},
		Transform:   NodeCreator{Name: "ObjectKV", Params: []Param{{Name: "key", Index: 0}, {Name: "value", Index: 2}}},
	},
	{
		ID:          72,
		Nonterminal: Gen18,
		Text:        "$_gen18 = list($type_e, :comma)",
		First:       tokens.NewSet(tokens.Type),
		Nullable:    true,
	},
	{
		ID:          73,
		Nonterminal: TypeE,
		Text:        "$type_e = :type <=> :lsquare $_gen18 :rsquare -> Type( name=$0, subtype=$2 )",
		First:       tokens.NewSet(tokens.Type),
		Expr:        &ExprRule{Kind: Mixfix, Operator: tokens.Lsquare, Nud: []Symbol{T(tokens.Type)}, Led: []Symbol{T(tokens.Lsquare), N(Gen18), T(tokens.Rsquare)}},
		Transform:   NodeCreator{Name: "Type", Params: []Param{{Name: "name", Index: 0}, {Name: "subtype", Index: 2}}},
	},
	{
		ID:          74,
		Nonterminal: TypeE,
		Text:        "$type_e = :type",
		First:       tokens.NewSet(tokens.Type),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Type)}},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          75,
		Nonterminal: E,
		Text:        "$e = $e :double_pipe $e -> LogicalOr( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.DoublePipe, Led: []Symbol{T(tokens.DoublePipe), N(E)}},
		Transform:   NodeCreator{Name: "LogicalOr", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          76,
		Nonterminal: E,
		Text:        "$e = $e :double_ampersand $e -> LogicalAnd( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.DoubleAmpersand, Led: []Symbol{T(tokens.DoubleAmpersand), N(E)}},
		Transform:   NodeCreator{Name: "LogicalAnd", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          77,
		Nonterminal: E,
		Text:        "$e = $e :double_equal $e -> Equals( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.DoubleEqual, Led: []Symbol{T(tokens.DoubleEqual), N(E)}},
		Transform:   NodeCreator{Name: "Equals", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          78,
		Nonterminal: E,
		Text:        "$e = $e :not_equal $e -> NotEquals( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.NotEqual, Led: []Symbol{T(tokens.NotEqual), N(E)}},
		Transform:   NodeCreator{Name: "NotEquals", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          79,
		Nonterminal: E,
		Text:        "$e = $e :lt $e -> LessThan( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Lt, Led: []Symbol{T(tokens.Lt), N(E)}},
		Transform:   NodeCreator{Name: "LessThan", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          80,
		Nonterminal: E,
		Text:        "$e = $e :lteq $e -> LessThanOrEqual( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Lteq, Led: []Symbol{T(tokens.Lteq), N(E)}},
		Transform:   NodeCreator{Name: "LessThanOrEqual", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          81,
		Nonterminal: E,
		Text:        "$e = $e :gt $e -> GreaterThan( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Gt, Led: []Symbol{T(tokens.Gt), N(E)}},
		Transform:   NodeCreator{Name: "GreaterThan", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          82,
		Nonterminal: E,
		Text:        "$e = $e :gteq $e -> GreaterThanOrEqual( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Gteq, Led: []Symbol{T(tokens.Gteq), N(E)}},
		Transform:   NodeCreator{Name: "GreaterThanOrEqual", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          83,
		Nonterminal: E,
		Text:        "$e = $e :plus $e -> Add( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Plus, Led: []Symbol{T(tokens.Plus), N(E)}},
		Transform:   NodeCreator{Name: "Add", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          84,
		Nonterminal: E,
		Text:        "$e = $e :dash $e -> Subtract( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Dash, Led: []Symbol{T(tokens.Dash), N(E)}},
		Transform:   NodeCreator{Name: "Subtract", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          85,
		Nonterminal: E,
		Text:        "$e = $e :asterisk $e -> Multiply( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Asterisk, Led: []Symbol{T(tokens.Asterisk), N(E)}},
		Transform:   NodeCreator{Name: "Multiply", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          86,
		Nonterminal: E,
		Text:        "$e = $e :slash $e -> Divide( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Slash, Led: []Symbol{T(tokens.Slash), N(E)}},
		Transform:   NodeCreator{Name: "Divide", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          87,
		Nonterminal: E,
		Text:        "$e = $e :percent $e -> Remainder( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Expr:        &ExprRule{Kind: Infix, Operator: tokens.Percent, Led: []Symbol{T(tokens.Percent), N(E)}},
		Transform:   NodeCreator{Name: "Remainder", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          88,
		Nonterminal: E,
		Text:        "$e = :not $e -> LogicalNot( expression=$1 )",
		First:       tokens.NewSet(tokens.Not),
		Expr:        &ExprRule{Kind: Prefix, Operator: tokens.Not, Nud: []Symbol{T(tokens.Not), N(E)}},
		Transform:   NodeCreator{Name: "LogicalNot", Params: []Param{{Name: "expression", Index: 1}}},
	},
	{
		ID:          89,
		Nonterminal: E,
		Text:        "$e = :plus $e -> UnaryPlus( expression=$1 )",
		First:       tokens.NewSet(tokens.Plus),
		Expr:        &ExprRule{Kind: Prefix, Operator: tokens.Plus, Nud: []Symbol{T(tokens.Plus), N(E)}},
		Transform:   NodeCreator{Name: "UnaryPlus", Params: []Param{{Name: "expression", Index: 1}}},
	},
	{
		ID:          90,
		Nonterminal: E,
		Text:        "$e = :dash $e -> UnaryNegation( expression=$1 )",
		First:       tokens.NewSet(tokens.Dash),
		Expr:        &ExprRule{Kind: Prefix, Operator: tokens.Dash, Nud: []Symbol{T(tokens.Dash), N(E)}},
		Transform:   NodeCreator{Name: "UnaryNegation", Params: []Param{{Name: "expression", Index: 1}}},
	},
	{
		ID:          91,
		Nonterminal: Gen19,
		Text:        "$_gen19 = list($e, :comma)",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Nullable:    true,
	},
	{
		ID:          92,
		Nonterminal: E,
		Text:        "$e = :identifier <=> :lparen $_gen19 :rparen -> FunctionCall( name=$0, params=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		Expr:        &ExprRule{Kind: Mixfix, Operator: tokens.Lparen, Nud: []Symbol{T(tokens.Identifier)}, Led: []Symbol{T(tokens.Lparen), N(Gen19), T(tokens.Rparen)}},
		Transform:   NodeCreator{Name: "FunctionCall", Params: []Param{{Name: "name", Index: 0}, {Name: "params", Index: 2}}},
	},
	{
		ID:          93,
		Nonterminal: E,
		Text:        "$e = :identifier <=> :lsquare $e :rsquare -> ArrayOrMapLookup( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		Expr:        &ExprRule{Kind: Mixfix, Operator: tokens.Lsquare, Nud: []Symbol{T(tokens.Identifier)}, Led: []Symbol{T(tokens.Lsquare), N(E), T(tokens.Rsquare)}},
		Transform:   NodeCreator{Name: "ArrayOrMapLookup", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          94,
		Nonterminal: E,
		Text:        "$e = :identifier <=> :dot :identifier -> MemberAccess( lhs=$0, rhs=$2 )",
		First:       tokens.NewSet(tokens.Identifier),
		Expr:        &ExprRule{Kind: Mixfix, Operator: tokens.Dot, Nud: []Symbol{T(tokens.Identifier)}, Led: []Symbol{T(tokens.Dot), T(tokens.Identifier)}},
		Transform:   NodeCreator{Name: "MemberAccess", Params: []Param{{Name: "lhs", Index: 0}, {Name: "rhs", Index: 2}}},
	},
	{
		ID:          95,
		Nonterminal: Gen20,
		Text:        "$_gen20 = list($object_kv, :comma)",
		First:       tokens.NewSet(tokens.Identifier),
		Nullable:    true,
	},
	{
		ID:          96,
		Nonterminal: E,
		Text:        "$e = :object :lbrace $_gen20 :rbrace -> ObjectLiteral( map=$2 )",
		First:       tokens.NewSet(tokens.Object),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Object), T(tokens.Lbrace), N(Gen20), T(tokens.Rbrace)}},
		Transform:   NodeCreator{Name: "ObjectLiteral", Params: []Param{{Name: "map", Index: 2}}},
	},
	{
		ID:          97,
		Nonterminal: E,
		Text:        "$e = :lsquare $_gen19 :rsquare -> ArrayLiteral( values=$1 )",
		First:       tokens.NewSet(tokens.Lsquare),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Lsquare), N(Gen19), T(tokens.Rsquare)}},
		Transform:   NodeCreator{Name: "ArrayLiteral", Params: []Param{{Name: "values", Index: 1}}},
	},
	{
		ID:          98,
		Nonterminal: Gen21,
		Text:        "$_gen21 = list($map_kv, :comma)",
		First:       tokens.NewSet(tokens.Object, tokens.String, tokens.Integer, tokens.Float, tokens.Boolean, tokens.Identifier, tokens.Lbrace, tokens.Lparen, tokens.Lsquare, tokens.Plus, tokens.Dash, tokens.Not),
		Nullable:    true,
	},
	{
		ID:          99,
		Nonterminal: E,
		Text:        "$e = :lbrace $_gen21 :rbrace -> MapLiteral( map=$1 )",
		First:       tokens.NewSet(tokens.Lbrace),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Lbrace), N(Gen21), T(tokens.Rbrace)}},
		Transform:   NodeCreator{Name: "MapLiteral", Params: []Param{{Name: "map", Index: 1}}},
	},
	{
		ID:          100,
		Nonterminal: E,
		Text:        "$e = :lparen $e :rparen -> $1",
		First:       tokens.NewSet(tokens.Lparen),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Lparen), N(E), T(tokens.Rparen)}},
		Transform:   Substitution{Index: 1},
	},
	{
		ID:          101,
		Nonterminal: E,
		Text:        "$e = :string",
		First:       tokens.NewSet(tokens.String),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.String)}},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          102,
		Nonterminal: E,
		Text:        "$e = :identifier",
		First:       tokens.NewSet(tokens.Identifier),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Identifier)}},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          103,
		Nonterminal: E,
		Text:        "$e = :boolean",
		First:       tokens.NewSet(tokens.Boolean),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Boolean)}},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          104,
		Nonterminal: E,
		Text:        "$e = :integer",
		First:       tokens.NewSet(tokens.Integer),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Integer)}},
		Transform:   Substitution{Index: 0},
	},
	{
		ID:          105,
		Nonterminal: E,
		Text:        "$e = :float",
		First:       tokens.NewSet(tokens.Float),
		Expr:        &ExprRule{Kind: Atom, Nud: []Symbol{T(tokens.Float)}},
		Transform:   Substitution{Index: 0},
	},
}
