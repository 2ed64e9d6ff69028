package imm

import "hash/fnv"

// ID identifies a widget for state persistence.
// The same label under the same identity scopes gives the same ID on every
// frame, so widgets drawn in a loop must be separated with PushID.
type ID uint64

// GetID derives the ID of label within the current identity scope.
func (ctx *Context) GetID(label string) ID {
	return hashID(ctx.CurrentID(), label)
}

func hashID(parent ID, label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	for i := range seed {
		seed[i] = byte(parent >> (8 * i))
	}
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// PushID opens an identity scope.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID closes the innermost identity scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
		return
	}
	ctx.log.Warn("PopID without PushID")
}

// CurrentID returns the innermost scope ID, 0 at the top level.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
