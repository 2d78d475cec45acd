package script

import (
	"dockbox/pkg/layout"
	"dockbox/pkg/widget"

	"github.com/dop251/goja"
)

var nodeKeys = []string{
	"id", "kind", "rule", "enabled", "minWidth", "minHeight",
	"canScrollX", "canScrollY", "text", "scrollX", "scrollY",
	"x", "y", "w", "h", "windowX", "windowY", "contentWidth", "contentHeight",
	"children", "parent", "appendChild", "removeChild", "find",
}

// nodeAccessor implements goja.DynamicObject over a layout node. Geometry
// reads return the results of the most recent layout.
type nodeAccessor struct {
	ctx  *domContext
	node *layout.Node
}

func (a *nodeAccessor) Get(key string) goja.Value {
	vm := a.ctx.vm
	n := a.node

	switch key {
	case "id":
		return vm.ToValue(n.Name)
	case "kind":
		if k, ok := n.Content.(interface{ Kind() string }); ok {
			return vm.ToValue(k.Kind())
		}
		return vm.ToValue("node")
	case "rule":
		return vm.ToValue(n.Rule.String())
	case "enabled":
		return vm.ToValue(n.Enabled())
	case "minWidth":
		return vm.ToValue(n.MinSizeX)
	case "minHeight":
		return vm.ToValue(n.MinSizeY)
	case "canScrollX":
		return vm.ToValue(n.CanScrollX)
	case "canScrollY":
		return vm.ToValue(n.CanScrollY)
	case "text":
		if l, ok := n.Content.(*widget.Label); ok {
			return vm.ToValue(l.Text)
		}
		return goja.Undefined()
	case "scrollX", "scrollY":
		if s, ok := n.Content.(*widget.ScrollView); ok {
			if key == "scrollX" {
				return vm.ToValue(s.ScrollX)
			}
			return vm.ToValue(s.ScrollY)
		}
		return goja.Undefined()
	case "x":
		return vm.ToValue(n.X)
	case "y":
		return vm.ToValue(n.Y)
	case "w":
		return vm.ToValue(n.W)
	case "h":
		return vm.ToValue(n.H)
	case "windowX":
		return vm.ToValue(n.WindowOffsetX)
	case "windowY":
		return vm.ToValue(n.WindowOffsetY)
	case "contentWidth":
		return vm.ToValue(n.ContentSizeX)
	case "contentHeight":
		return vm.ToValue(n.ContentSizeY)
	case "children":
		return a.ctx.nodeArray(n.Children)
	case "parent":
		return a.ctx.nodeProxy(n.Parent())
	case "appendChild":
		return vm.ToValue(a.appendChildFn())
	case "removeChild":
		return vm.ToValue(a.removeChildFn())
	case "find":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) == 0 {
				return goja.Null()
			}
			return a.ctx.nodeProxy(n.Find(call.Arguments[0].String()))
		})
	}
	return goja.Undefined()
}

func (a *nodeAccessor) Set(key string, val goja.Value) bool {
	n := a.node

	switch key {
	case "rule":
		r, ok := layout.ParseRule(val.String())
		if !ok {
			panic(a.ctx.vm.NewTypeError("unknown rule " + val.String()))
		}
		n.Rule = r
		return true
	case "enabled":
		n.SetEnabled(val.ToBoolean())
		return true
	case "minWidth":
		n.MinSizeX = max(0, val.ToFloat())
		return true
	case "minHeight":
		n.MinSizeY = max(0, val.ToFloat())
		return true
	case "canScrollX":
		n.CanScrollX = val.ToBoolean()
		return true
	case "canScrollY":
		n.CanScrollY = val.ToBoolean()
		return true
	case "text":
		if l, ok := n.Content.(*widget.Label); ok {
			l.Text = val.String()
			return true
		}
	case "scrollX", "scrollY":
		if s, ok := n.Content.(*widget.ScrollView); ok {
			if key == "scrollX" {
				s.ScrollX = int(val.ToInteger())
			} else {
				s.ScrollY = int(val.ToInteger())
			}
			return true
		}
	}
	return false
}

func (a *nodeAccessor) Has(key string) bool {
	for _, k := range nodeKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (a *nodeAccessor) Delete(key string) bool {
	return false
}

func (a *nodeAccessor) Keys() []string {
	return nodeKeys
}

// appendChildFn implements node.appendChild(child), moving child from any
// previous parent.
func (a *nodeAccessor) appendChildFn() func(call goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(a.ctx.vm.NewTypeError("appendChild: 1 argument required"))
		}
		child := a.ctx.unwrapNode(call.Arguments[0])
		if child == nil {
			panic(a.ctx.vm.NewTypeError("appendChild: parameter is not a node"))
		}
		for p := a.node; p != nil; p = p.Parent() {
			if p == child {
				panic(a.ctx.vm.NewTypeError("appendChild: a node cannot contain itself"))
			}
		}
		a.node.AddChild(child)
		return a.ctx.nodeProxy(child)
	}
}

// removeChildFn implements node.removeChild(child).
func (a *nodeAccessor) removeChildFn() func(call goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(a.ctx.vm.NewTypeError("removeChild: 1 argument required"))
		}
		child := a.ctx.unwrapNode(call.Arguments[0])
		if child == nil || !a.node.RemoveChild(child) {
			panic(a.ctx.vm.NewTypeError("removeChild: the node to be removed is not a child of this node"))
		}
		return a.ctx.nodeProxy(child)
	}
}
