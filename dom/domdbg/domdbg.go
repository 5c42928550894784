/*
Package domdbg implements helpers to debug a styled DOM tree.

Tree prints an indented outline of the elements of a document together
with a summary of their resolved styles. ToGraphViz draws the tree with
selected property groups as a GraphViz diagram.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/cascade/css"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Names of property groups for output.
const (
	GroupDisplay = "display"
	GroupBox     = "box"
	GroupMargins = "margins"
	GroupPadding = "padding"
	GroupBorder  = "border"
	GroupFont    = "font"
)

var defaultGroups = []string{
	GroupMargins,
	GroupPadding,
	GroupBorder,
	GroupDisplay,
}

// --- Tree outline ----------------------------------------------------------

// Tree writes an outline of the elements of a document, one element per
// line, with a summary of each element's resolved style.
func Tree(doc *styledtree.Document, w io.Writer) {
	p := treeprint.New()
	p.SetValue("#document")
	var walk func(tp treeprint.Tree, sn *styledtree.StyNode)
	walk = func(tp treeprint.Tree, sn *styledtree.StyNode) {
		label := elementLabel(sn)
		if sn.FirstElementChild() == nil {
			tp.AddNode(label)
			return
		}
		branch := tp.AddBranch(label)
		for h := sn.HTMLNode().FirstChild; h != nil; h = h.NextSibling {
			if h.Type == html.ElementNode {
				walk(branch, doc.NodeFor(h))
			}
		}
	}
	for h := doc.Root().HTMLNode().FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			walk(p, doc.NodeFor(h))
		}
	}
	io.WriteString(w, p.String())
}

func elementLabel(sn *styledtree.StyNode) string {
	var b strings.Builder
	b.WriteString("<" + sn.LocalName())
	if id := sn.ID(); id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range sn.Classes() {
		b.WriteString("." + c)
	}
	b.WriteString(">")
	rs := sn.ComputedStyle()
	if rs == nil {
		b.WriteString(" (unstyled)")
		return b.String()
	}
	b.WriteString(" " + rs.String())
	for _, ps := range rs.PseudoStyles() {
		b.WriteString(" " + ps.String())
	}
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the document, a Writer,
// and an optional list of property group names. The diagram will include
// the properties of these groups for every styled element.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(doc *styledtree.Document, w io.Writer, styleGroups []string) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[*html.Node]string, 4096)
	g := &grapher{doc: doc, w: w, dict: dict, params: &gparams}
	for h := doc.Root().HTMLNode().FirstChild; h != nil; h = h.NextSibling {
		if h.Type == html.ElementNode {
			g.nodes(doc.NodeFor(h))
		}
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a styled document and a testing.T,
// it will create a Graphiviz image of the document tree and write it to a
// file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *styledtree.Document, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile, nil)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type grapher struct {
	doc    *styledtree.Document
	w      io.Writer
	dict   map[*html.Node]string
	params *graphParamsType
}

type node struct {
	N    *styledtree.StyNode
	Name string
}

// PropertyGroup is a named list of properties for output.
type PropertyGroup struct {
	Name       string
	Properties []Property
}

// Property is a property name with its value, formatted for output.
type Property struct {
	Key, Value string
}

func (g *grapher) nodes(n *styledtree.StyNode) {
	g.domNode(n)
	for h := n.HTMLNode().FirstChild; h != nil; h = h.NextSibling {
		switch h.Type {
		case html.ElementNode, html.TextNode:
			ch := g.doc.NodeFor(h)
			if h.Type == html.TextNode && strings.TrimSpace(h.Data) == "" {
				continue
			}
			g.nodes(ch)
			g.domEdge(n, ch)
		}
	}
}

func (g *grapher) name(n *styledtree.StyNode) string {
	name := g.dict[n.HTMLNode()]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[n.HTMLNode()] = name
	}
	return name
}

func (g *grapher) domNode(n *styledtree.StyNode) {
	if err := g.params.NodeTmpl.Execute(g.w, &node{n, g.name(n)}); err != nil {
		panic(err)
	}
	g.domStyles(n)
}

func (g *grapher) domStyles(n *styledtree.StyNode) {
	if n.NodeType() != html.ElementNode || n.ComputedStyle() == nil {
		return
	}
	var prev *PropertyGroup
	for _, s := range g.params.StyleGroups {
		pg := GroupProperties(n.ComputedStyle(), s)
		if pg == nil {
			continue
		}
		if err := g.params.StylegroupTmpl.Execute(g.w, pg); err != nil {
			panic(err)
		}
		if prev == nil {
			g.pgEdge(n, pg)
		} else {
			g.pgpgEdge(prev, pg)
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

func (g *grapher) domEdge(n1, n2 *styledtree.StyNode) {
	e := edge{node{n1, g.name(n1)}, node{n2, g.name(n2)}}
	if err := g.params.EdgeTmpl.Execute(g.w, e); err != nil {
		panic(err)
	}
}

type pgedge struct {
	Name      string
	PropGroup *PropertyGroup
}

func (g *grapher) pgEdge(n *styledtree.StyNode, pg *PropertyGroup) {
	if err := g.params.PgedgeTmpl.Execute(g.w, pgedge{g.name(n), pg}); err != nil {
		panic(err)
	}
}

func (g *grapher) pgpgEdge(pg1, pg2 *PropertyGroup) {
	if err := g.params.PgpgTmpl.Execute(g.w, []*PropertyGroup{pg1, pg2}); err != nil {
		panic(err)
	}
}

// GroupProperties lists the properties of a named group of a style. It
// returns nil for unknown group names.
func GroupProperties(rs *style.RenderStyle, group string) *PropertyGroup {
	pg := &PropertyGroup{Name: group}
	add := func(key string, value interface{}) {
		pg.Properties = append(pg.Properties, Property{key, fmt.Sprint(value)})
	}
	sides := func(prefix string, vals [4]css.DimenT) {
		for s, name := range sideNames {
			add(prefix+"-"+name, vals[s])
		}
	}
	switch group {
	case GroupDisplay:
		add("display", rs.Display())
		add("position", rs.Position())
		add("float", css.FloatKeywords.Name(rs.Float()))
	case GroupBox:
		add("width", rs.Box().Width)
		add("height", rs.Box().Height)
	case GroupMargins:
		sides("margin", rs.Surround().Margin)
	case GroupPadding:
		sides("padding", rs.Surround().Padding)
	case GroupBorder:
		for s, name := range sideNames {
			edge := rs.Surround().Border[s]
			add("border-"+name, fmt.Sprintf("%gpx %s %s", edge.ComputedWidth(),
				css.BorderStyleKeywords.Name(edge.Style), edge.Color.Or(rs.Color())))
		}
	case GroupFont:
		add("font-family", strings.Join(rs.Inherited().FontFamily, ","))
		add("font-size", fmt.Sprintf("%.2fpx", rs.FontSize()))
		add("font-weight", rs.Inherited().FontWeight)
		add("color", rs.Color())
	default:
		return nil
	}
	return pg
}

var sideNames = [4]string{"top", "right", "bottom", "left"}

func shortText(n *styledtree.StyNode) string {
	h := n.HTMLNode()
	s := "\"\\\""
	if len(h.Data) > 10 {
		s += h.Data[:10] + "...\\\"\""
	} else {
		s += h.Data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
