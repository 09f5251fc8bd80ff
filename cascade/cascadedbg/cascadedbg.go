/*
Package cascadedbg implements helpers to debug style resolution.

Tree prints the explanation of a resolved property as an ASCII tree, one
branch per level of the instance selector. ToGraphViz draws an instance tree
of a snapshot together with resolved properties in GraphViz (DOT) format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package cascadedbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"testing"
	"text/template"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/cascade/cascade"
	"github.com/npillmayer/cascade/model"
	"github.com/npillmayer/cascade/value"
)

// Tree renders an explanation as a tree:
//
//     color of text = blue, declared at body
//     ├── [body]  specified blue, computed blue
//     │   └── * color: blue [body-local@base]
//     ├── [box]  specified blue, computed blue
//     └── [text]  specified blue, computed blue
//
// The winning declaration of a level is marked with a '*'.
func Tree(ex cascade.Explanation) string {
	root := fmt.Sprintf("%s of %s = %v", ex.Property, ex.Selector.Leaf(), ex.Result.Computed)
	if !value.Equal(ex.Result.Computed, ex.Result.Used) {
		root += fmt.Sprintf(" (used %v)", ex.Result.Used)
	}
	var d cascade.Declared
	switch m := ex.Origin().Match(); m {
	case m.Just(&d):
		if d.Instance != ex.Selector.Leaf() {
			root += fmt.Sprintf(", declared at %s", d.Instance)
		}
	case m.Nothing():
		root += ", initial"
	}
	p := tp.NewWithRoot(root)
	for _, lv := range ex.Levels {
		if lv.Missing && len(lv.Candidates) == 0 {
			p.AddMetaNode(lv.Instance, fmt.Sprintf("pass-through, computed %v", lv.Computed))
			continue
		}
		summary := fmt.Sprintf("specified %v, computed %v", lv.Specified, lv.Computed)
		if len(lv.Candidates) == 0 && len(lv.Notes) == 0 {
			p.AddMetaNode(lv.Instance, summary)
			continue
		}
		b := p.AddMetaBranch(lv.Instance, summary)
		for i, d := range lv.Candidates {
			if i == len(lv.Candidates)-1 {
				b.AddNode("* " + d.String())
			} else {
				b.AddNode(d.String())
			}
		}
		for _, note := range lv.Notes {
			b.AddMetaNode("note", note)
		}
	}
	return p.String()
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname     string
	InstanceTmpl *template.Template
	EdgeTmpl     *template.Template
}

type instanceNode struct {
	Name     string
	Instance model.Instance
	Known    bool
	Styles   []styleEntry
}

type styleEntry struct {
	Key, Value string
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram for the instance tree of a snapshot. The
// diagram is in GraphViz (DOT) format. Every instance shows the resolved
// values of props.
func ToGraphViz(snap *model.Snapshot, r *cascade.Resolver, props []string, w io.Writer) error {
	tmpl, err := template.New("instances").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.InstanceTmpl = template.Must(template.New("instance").Parse(instanceTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[model.InstanceID]string)
	for _, id := range snap.Instances() {
		if _, hasParent := snap.Parent(id); hasParent {
			continue
		}
		if err = instances(snap, r, props, id, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func instances(snap *model.Snapshot, r *cascade.Resolver, props []string, id model.InstanceID,
	w io.Writer, dict map[model.InstanceID]string, gparams *graphParamsType) error {
	//
	name := fmt.Sprintf("inst%05d", len(dict)+1)
	dict[id] = name
	inst, known := snap.Instance(id)
	n := instanceNode{Name: name, Instance: inst, Known: known}
	sel := snap.Selector(id)
	for _, prop := range props {
		res := r.Resolve(sel, prop)
		n.Styles = append(n.Styles, styleEntry{Key: prop, Value: res.Used.String()})
	}
	if err := gparams.InstanceTmpl.Execute(w, n); err != nil {
		return err
	}
	for _, ch := range snap.Children(id) {
		if err := instances(snap, r, props, ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

// Dotty is a helper for testing. Given a snapshot and a testing.T, it will
// create a Graphiviz image of the instance tree and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(snap *model.Snapshot, r *cascade.Resolver, props []string, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "instances.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing instance digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(snap, r, props, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing instance tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const instanceTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Instance.ID }} &lt;{{ .Instance.Tag }}&gt;</font></td></tr>
      {{ range .Styles }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
