// Language list tracks highlight.js 11.7.0 (src/languages).

package hljs

// Languages supported by highlight.js.
//
// The zero value is [Plaintext].
const (
	Plaintext Language = iota
	OneC
	ABNF
	Accesslog
	ActionScript
	Ada
	AngelScript
	Apache
	AppleScript
	Arcade
	Arduino
	ARMAsm
	AsciiDoc
	AspectJ
	AutoHotkey
	AutoIt
	AVRAsm
	Awk
	Axapta
	Bash
	Basic
	BNF
	Brainfuck
	C
	CAL
	CapnProto
	Ceylon
	Clean
	Clojure
	ClojureREPL
	Cmake
	CoffeeScript
	Coq
	COS
	Cpp
	Crmsh
	Crystal
	CSharp
	CSP
	CSS
	D
	Dart
	Delphi
	Diff
	Django
	DNS
	Dockerfile
	Dos
	DSConfig
	DTS
	Dust
	EBNF
	Elixir
	Elm
	Erb
	Erlang
	ErlangREPL
	Excel
	Fix
	Flix
	Fortran
	FSharp
	Gams
	Gauss
	GCode
	Gherkin
	GLSL
	GML
	Go
	Golo
	Gradle
	GraphQL
	Groovy
	Haml
	Handlebars
	Haskell
	Haxe
	HSP
	HTTP
	Hy
	Inform7
	INI
	IRPF90
	ISBL
	Java
	JavaScript
	JBossCLI
	JSON
	Julia
	JuliaREPL
	Kotlin
	Lasso
	LaTeX
	LDIF
	Leaf
	Less
	Lisp
	LiveCodeServer
	LiveScript
	LLVM
	LSL
	Lua
	Makefile
	Markdown
	Mathematica
	Matlab
	Maxima
	MEL
	Mercury
	MIPSAsm
	Mizar
	Mojolicious
	Monkey
	MoonScript
	N1QL
	NestedText
	Nginx
	Nim
	Nix
	NodeREPL
	NSIS
	ObjectiveC
	OCaml
	OpenSCAD
	Oxygene
	Parser3
	Perl
	PF
	PgSQL
	PHP
	PHPTemplate
	Pony
	PowerShell
	Processing
	Profile
	Prolog
	Properties
	Protobuf
	Puppet
	PureBasic
	Python
	PythonREPL
	Q
	QML
	R
	ReasonML
	Rib
	Roboconf
	RouterOS
	RSL
	Ruby
	RulesLanguage
	Rust
	SAS
	Scala
	Scheme
	Scilab
	SCSS
	Shell
	Smali
	Smalltalk
	SML
	SQF
	SQL
	Stan
	Stata
	Step21
	Stylus
	Subunit
	Swift
	TaggerScript
	TAP
	Tcl
	Thrift
	TP
	Twig
	TypeScript
	Vala
	VBNet
	VBScript
	VBScriptHTML
	Verilog
	Vhdl
	Vim
	Wasm
	Wren
	X86Asm
	XL
	XML
	Xquery
	YAML
	Zephir
)

var _languages = [...]languageInfo{
	Plaintext:      {name: "plaintext", common: true},
	OneC:           {name: "1c"},
	ABNF:           {name: "abnf"},
	Accesslog:      {name: "accesslog"},
	ActionScript:   {name: "actionscript"},
	Ada:            {name: "ada"},
	AngelScript:    {name: "angelscript"},
	Apache:         {name: "apache"},
	AppleScript:    {name: "applescript"},
	Arcade:         {name: "arcade"},
	Arduino:        {name: "arduino"},
	ARMAsm:         {name: "armasm"},
	AsciiDoc:       {name: "asciidoc"},
	AspectJ:        {name: "aspectj"},
	AutoHotkey:     {name: "autohotkey"},
	AutoIt:         {name: "autoit"},
	AVRAsm:         {name: "avrasm"},
	Awk:            {name: "awk"},
	Axapta:         {name: "axapta"},
	Bash:           {name: "bash", common: true},
	Basic:          {name: "basic"},
	BNF:            {name: "bnf"},
	Brainfuck:      {name: "brainfuck"},
	C:              {name: "c", common: true},
	CAL:            {name: "cal"},
	CapnProto:      {name: "capnproto"},
	Ceylon:         {name: "ceylon"},
	Clean:          {name: "clean"},
	Clojure:        {name: "clojure"},
	ClojureREPL:    {name: "clojure-repl"},
	Cmake:          {name: "cmake"},
	CoffeeScript:   {name: "coffeescript"},
	Coq:            {name: "coq"},
	COS:            {name: "cos"},
	Cpp:            {name: "cpp", common: true},
	Crmsh:          {name: "crmsh"},
	Crystal:        {name: "crystal"},
	CSharp:         {name: "csharp", common: true},
	CSP:            {name: "csp"},
	CSS:            {name: "css", common: true},
	D:              {name: "d"},
	Dart:           {name: "dart"},
	Delphi:         {name: "delphi"},
	Diff:           {name: "diff", common: true},
	Django:         {name: "django"},
	DNS:            {name: "dns"},
	Dockerfile:     {name: "dockerfile"},
	Dos:            {name: "dos"},
	DSConfig:       {name: "dsconfig"},
	DTS:            {name: "dts"},
	Dust:           {name: "dust"},
	EBNF:           {name: "ebnf"},
	Elixir:         {name: "elixir"},
	Elm:            {name: "elm"},
	Erb:            {name: "erb"},
	Erlang:         {name: "erlang"},
	ErlangREPL:     {name: "erlang-repl"},
	Excel:          {name: "excel"},
	Fix:            {name: "fix"},
	Flix:           {name: "flix"},
	Fortran:        {name: "fortran"},
	FSharp:         {name: "fsharp"},
	Gams:           {name: "gams"},
	Gauss:          {name: "gauss"},
	GCode:          {name: "gcode"},
	Gherkin:        {name: "gherkin"},
	GLSL:           {name: "glsl"},
	GML:            {name: "gml"},
	Go:             {name: "go", common: true},
	Golo:           {name: "golo"},
	Gradle:         {name: "gradle"},
	GraphQL:        {name: "graphql", common: true},
	Groovy:         {name: "groovy"},
	Haml:           {name: "haml"},
	Handlebars:     {name: "handlebars"},
	Haskell:        {name: "haskell"},
	Haxe:           {name: "haxe"},
	HSP:            {name: "hsp"},
	HTTP:           {name: "http"},
	Hy:             {name: "hy"},
	Inform7:        {name: "inform7"},
	INI:            {name: "ini", common: true},
	IRPF90:         {name: "irpf90"},
	ISBL:           {name: "isbl"},
	Java:           {name: "java", common: true},
	JavaScript:     {name: "javascript", common: true},
	JBossCLI:       {name: "jboss-cli"},
	JSON:           {name: "json", common: true},
	Julia:          {name: "julia"},
	JuliaREPL:      {name: "julia-repl"},
	Kotlin:         {name: "kotlin", common: true},
	Lasso:          {name: "lasso"},
	LaTeX:          {name: "latex"},
	LDIF:           {name: "ldif"},
	Leaf:           {name: "leaf"},
	Less:           {name: "less", common: true},
	Lisp:           {name: "lisp"},
	LiveCodeServer: {name: "livecodeserver"},
	LiveScript:     {name: "livescript"},
	LLVM:           {name: "llvm"},
	LSL:            {name: "lsl"},
	Lua:            {name: "lua", common: true},
	Makefile:       {name: "makefile", common: true},
	Markdown:       {name: "markdown", common: true},
	Mathematica:    {name: "mathematica"},
	Matlab:         {name: "matlab"},
	Maxima:         {name: "maxima"},
	MEL:            {name: "mel"},
	Mercury:        {name: "mercury"},
	MIPSAsm:        {name: "mipsasm"},
	Mizar:          {name: "mizar"},
	Mojolicious:    {name: "mojolicious"},
	Monkey:         {name: "monkey"},
	MoonScript:     {name: "moonscript"},
	N1QL:           {name: "n1ql"},
	NestedText:     {name: "nestedtext"},
	Nginx:          {name: "nginx"},
	Nim:            {name: "nim"},
	Nix:            {name: "nix"},
	NodeREPL:       {name: "node-repl"},
	NSIS:           {name: "nsis"},
	ObjectiveC:     {name: "objectivec", common: true},
	OCaml:          {name: "ocaml"},
	OpenSCAD:       {name: "openscad"},
	Oxygene:        {name: "oxygene"},
	Parser3:        {name: "parser3"},
	Perl:           {name: "perl", common: true},
	PF:             {name: "pf"},
	PgSQL:          {name: "pgsql"},
	PHP:            {name: "php", common: true},
	PHPTemplate:    {name: "php-template", common: true},
	Pony:           {name: "pony"},
	PowerShell:     {name: "powershell"},
	Processing:     {name: "processing"},
	Profile:        {name: "profile"},
	Prolog:         {name: "prolog"},
	Properties:     {name: "properties"},
	Protobuf:       {name: "protobuf"},
	Puppet:         {name: "puppet"},
	PureBasic:      {name: "purebasic"},
	Python:         {name: "python", common: true},
	PythonREPL:     {name: "python-repl", common: true},
	Q:              {name: "q"},
	QML:            {name: "qml"},
	R:              {name: "r", common: true},
	ReasonML:       {name: "reasonml"},
	Rib:            {name: "rib"},
	Roboconf:       {name: "roboconf"},
	RouterOS:       {name: "routeros"},
	RSL:            {name: "rsl"},
	Ruby:           {name: "ruby", common: true},
	RulesLanguage:  {name: "ruleslanguage"},
	Rust:           {name: "rust", common: true},
	SAS:            {name: "sas"},
	Scala:          {name: "scala"},
	Scheme:         {name: "scheme"},
	Scilab:         {name: "scilab"},
	SCSS:           {name: "scss", common: true},
	Shell:          {name: "shell", common: true},
	Smali:          {name: "smali"},
	Smalltalk:      {name: "smalltalk"},
	SML:            {name: "sml"},
	SQF:            {name: "sqf"},
	SQL:            {name: "sql", common: true},
	Stan:           {name: "stan"},
	Stata:          {name: "stata"},
	Step21:         {name: "step21"},
	Stylus:         {name: "stylus"},
	Subunit:        {name: "subunit"},
	Swift:          {name: "swift", common: true},
	TaggerScript:   {name: "taggerscript"},
	TAP:            {name: "tap"},
	Tcl:            {name: "tcl"},
	Thrift:         {name: "thrift"},
	TP:             {name: "tp"},
	Twig:           {name: "twig"},
	TypeScript:     {name: "typescript", common: true},
	Vala:           {name: "vala"},
	VBNet:          {name: "vbnet", common: true},
	VBScript:       {name: "vbscript"},
	VBScriptHTML:   {name: "vbscript-html"},
	Verilog:        {name: "verilog"},
	Vhdl:           {name: "vhdl"},
	Vim:            {name: "vim"},
	Wasm:           {name: "wasm", common: true},
	Wren:           {name: "wren"},
	X86Asm:         {name: "x86asm"},
	XL:             {name: "xl"},
	XML:            {name: "xml", common: true},
	Xquery:         {name: "xquery"},
	YAML:           {name: "yaml", common: true},
	Zephir:         {name: "zephir"},
}
