package script

import (
	"strconv"

	"dockbox/pkg/layout"
	"dockbox/pkg/text"
	"dockbox/pkg/widget"

	"github.com/dop251/goja"
)

// domContext holds the node-to-proxy cache so the same JS object is returned
// for the same node (needed for === identity checks).
type domContext struct {
	vm    *goja.Runtime
	root  *layout.Node
	cache map[*layout.Node]goja.Value

	// given to labels made by createElement
	fonts    *text.Fonts
	measurer text.Measurer
}

// registerDocument sets up the global `document` object.
func registerDocument(e *Engine, root *layout.Node) *domContext {
	vm := e.vm
	ctx := &domContext{
		vm:       vm,
		root:     root,
		cache:    make(map[*layout.Node]goja.Value),
		fonts:    e.Fonts,
		measurer: e.Measurer,
	}

	docObj := vm.NewObject()
	docObj.Set("root", ctx.nodeProxy(root))
	docObj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		return ctx.nodeProxy(root.Find(call.Arguments[0].String()))
	})
	docObj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("createElement: 1 argument required"))
		}
		kind := call.Arguments[0].String()
		name := kind
		if len(call.Arguments) > 1 {
			name = call.Arguments[1].String()
		}
		n := layout.NewNode(name, layout.RuleFill)
		switch kind {
		case "panel":
			n.Content = &widget.Panel{}
		case "label":
			n.Content = &widget.Label{Fonts: ctx.fonts, Measurer: ctx.measurer}
		case "scroll":
			n.Content = &widget.ScrollView{}
			n.CanScrollY = true
		default:
			panic(vm.NewTypeError("createElement: unknown element " + strconv.Quote(kind)))
		}
		return ctx.nodeProxy(n)
	})
	vm.Set("document", docObj)
	return ctx
}

// nodeArray creates a JS array of node proxies.
func (ctx *domContext) nodeArray(nodes []*layout.Node) goja.Value {
	vals := make([]any, len(nodes))
	for i, n := range nodes {
		vals[i] = ctx.nodeProxy(n)
	}
	return ctx.vm.NewArray(vals...)
}

// nodeProxy creates (or retrieves from cache) a DynamicObject wrapping n.
// A nil node is null.
func (ctx *domContext) nodeProxy(n *layout.Node) goja.Value {
	if n == nil {
		return goja.Null()
	}
	if v, ok := ctx.cache[n]; ok {
		return v
	}
	v := ctx.vm.NewDynamicObject(&nodeAccessor{ctx: ctx, node: n})
	ctx.cache[n] = v
	return v
}

// unwrapNode finds the node behind a proxy value.
func (ctx *domContext) unwrapNode(val goja.Value) *layout.Node {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj := val.ToObject(ctx.vm)
	for n, cached := range ctx.cache {
		if cached.SameAs(obj) {
			return n
		}
	}
	return nil
}
