// Package treent is a registry-bound scene graph for [Ebitengine].
//
// Every [Node] owns an ordered list of children and an entity in a
// [Registry] (a [Donburi] world). The entity carries the node's [Transform]
// and, optionally, an [Interaction] capability that decides whether the node
// captures pointer and touch input.
//
// # Scene graph
//
// Build trees with [Node.AppendChild], [Node.InsertChildAt],
// [Node.SetChildIndex], [Node.RemoveChild] and friends. Tree edits never
// panic: out-of-range indices clamp and removals of non-members are no-ops.
// Destroying a node detaches its children without destroying them.
//
//	scene := treent.NewScene()
//	panel := scene.NewNode("panel")
//	panel.Transform().SetPosition(100, 50)
//	scene.Root().AppendChild(panel)
//
// # Transforms
//
// [Node.UpdateTree] composes each node's local matrix with its parent's world
// matrix, pre-order, recomputing the whole tree on every call. [Scene.Update]
// drives it from [Identity] once per tick.
//
// # Input
//
// A [RootNode] subscribes to a [Window]'s input signals and routes each event
// through the tree: a node's own Interaction first, then its children in
// order, depth-first, stopping at the first capture. Child order is therefore
// both grouping order and input priority. [Node.DeepCancelInteractions]
// visits every node and is used when the window loses focus.
//
// [HitInteraction] is a ready-made Interaction that captures presses inside a
// [HitShape] and keeps receiving the moves and release of the presses it
// captured.
//
//	btn := scene.NewNode("button")
//	hit := treent.NewHitInteraction(treent.HitRect{Width: 80, Height: 24})
//	hit.OnRelease = func(ctx treent.PointerContext) { fmt.Println("clicked") }
//	btn.SetInteraction(hit)
//	panel.AppendChild(btn)
//
//	if err := treent.Run(scene, treent.RunConfig{Title: "demo"}); err != nil {
//		log.Fatal(err)
//	}
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package treent
