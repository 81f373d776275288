package treefile

import (
	"github.com/arthur-debert/layout/pkg/errors"
	"github.com/arthur-debert/layout/pkg/types"
	"github.com/beevik/etree"
)

const (
	tagDir   = "dir"
	tagFile  = "file"
	attrName = "name"
)

func parseXML(data []byte) (*types.Entry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "malformed XML tree")
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New(errors.ErrTreeParse, "XML tree has no root element")
	}
	return fromElement(root)
}

func fromElement(el *etree.Element) (*types.Entry, error) {
	name := el.SelectAttrValue(attrName, "")

	switch el.Tag {
	case tagFile:
		e := types.File(name)
		for _, child := range el.ChildElements() {
			c, err := fromElement(child)
			if err != nil {
				return nil, err
			}
			e.Children = append(e.Children, c)
		}
		return e, nil

	case tagDir:
		var children []*types.Entry
		for _, child := range el.ChildElements() {
			c, err := fromElement(child)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return types.Dir(name, children...), nil
	}

	return nil, errors.Newf(errors.ErrTreeParse, "unexpected element <%s> (want <dir> or <file>)", el.Tag).
		WithDetail("element", el.GetPath())
}

func marshalXML(tree *types.Entry) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	appendElement(&doc.Element, tree)
	doc.Indent(2)
	return doc.WriteToBytes()
}

func appendElement(parent *etree.Element, e *types.Entry) {
	tag := tagDir
	if !e.IsDir() {
		tag = tagFile
	}
	el := parent.CreateElement(tag)
	el.CreateAttr(attrName, e.Name)
	for _, c := range e.Children {
		appendElement(el, c)
	}
}
