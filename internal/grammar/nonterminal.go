// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grammar

// Nonterminal identifies a grammar symbol expanded by one or more rules.
type Nonterminal int

// Nonterminals of the workflow language. The _gen symbols are repetitions and
// optionals introduced when the grammar was normalized.
const (
	Document Nonterminal = iota
	Import
	ImportNamespace
	WorkflowOrTaskOrDecl
	Task
	Sections
	Command
	CommandPart
	CmdParam
	CmdParamKv
	Outputs
	OutputKv
	Runtime
	ParameterMeta
	Meta
	Map
	Kv
	Declaration
	Setter
	PostfixQuantifier
	MapKv
	Workflow
	WfBodyElement
	Call
	CallBody
	CallInput
	Mapping
	Alias
	WfOutputs
	WfOutput
	WfOutputWildcard
	WhileLoop
	IfStmt
	Scatter
	ObjectKv
	TypeE
	E
	Gen0
	Gen1
	Gen2
	Gen3
	Gen4
	Gen5
	Gen6
	Gen7
	Gen8
	Gen9
	Gen10
	Gen11
	Gen12
	Gen13
	Gen14
	Gen15
	Gen16
	Gen17
	Gen18
	Gen19
	Gen20
	Gen21

	numNonterminals = iota
)
