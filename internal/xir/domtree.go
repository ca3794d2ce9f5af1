package xir

// DomTreeNode is one function block's position in its dominator tree: its
// immediate dominator's node, its children and its dominance frontier
// (spec §4.11; original_source/passes/dom_tree.h). Mutators are unexported:
// a DomTreeNode is only ever built by ComputeDomTree, never assembled by
// hand.
type DomTreeNode struct {
	block     *BasicBlock
	parent    *DomTreeNode
	children  []*DomTreeNode
	frontiers []*BasicBlock
}

func (n *DomTreeNode) Block() *BasicBlock          { return n.block }
func (n *DomTreeNode) Parent() *DomTreeNode         { return n.parent }
func (n *DomTreeNode) Children() []*DomTreeNode     { return n.children }
func (n *DomTreeNode) Frontiers() []*BasicBlock     { return n.frontiers }

func (n *DomTreeNode) addChild(c *DomTreeNode)      { n.children = append(n.children, c) }
func (n *DomTreeNode) addFrontier(b *BasicBlock)    { n.frontiers = append(n.frontiers, b) }

// DomTree is a function's dominator tree together with its dominance
// frontiers, computed once by ComputeDomTree.
type DomTree struct {
	nodes map[*BasicBlock]*DomTreeNode
	root  *DomTreeNode
}

func (t *DomTree) Root() *DomTreeNode { return t.root }

// Node returns the dominator-tree node for block, or nil if block is
// unreachable (and therefore has no node).
func (t *DomTree) Node(block *BasicBlock) *DomTreeNode { return t.nodes[block] }

// Contains reports whether block is reachable (and therefore has a node).
func (t *DomTree) Contains(block *BasicBlock) bool {
	_, ok := t.nodes[block]
	return ok
}

// Dominates reports whether a dominates b, counting a dominating itself.
func (t *DomTree) Dominates(a, b *BasicBlock) bool {
	nb := t.nodes[b]
	if nb == nil {
		return false
	}
	for n := nb; n != nil; n = n.parent {
		if n.block == a {
			return true
		}
	}
	return false
}

// StrictlyDominates reports whether a dominates b and a != b.
func (t *DomTree) StrictlyDominates(a, b *BasicBlock) bool {
	return a != b && t.Dominates(a, b)
}

// ImmediateDominator returns block's immediate dominator, or nil for the
// entry block (which has none).
func (t *DomTree) ImmediateDominator(block *BasicBlock) *BasicBlock {
	n := t.nodes[block]
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.block
}

func (t *DomTree) addOrGetNode(b *BasicBlock) *DomTreeNode {
	if n, ok := t.nodes[b]; ok {
		return n
	}
	n := &DomTreeNode{block: b}
	t.nodes[b] = n
	return n
}

func (t *DomTree) setRoot(b *BasicBlock) {
	t.root = t.addOrGetNode(b)
}

func reversePostorder(entry *BasicBlock, succs func(*BasicBlock) []*BasicBlock) []*BasicBlock {
	var order []*BasicBlock
	visited := map[*BasicBlock]bool{}
	var visit func(*BasicBlock)
	visit = func(b *BasicBlock) {
		if visited[b] {
			return
		}
		visited[b] = true
		for _, s := range succs(b) {
			if s != nil {
				visit(s)
			}
		}
		order = append(order, b)
	}
	visit(entry)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

func successorsOf(b *BasicBlock) []*BasicBlock {
	term := b.Terminator()
	if term == nil {
		return nil
	}
	return term.Successors()
}

// ComputeDomTree computes fn's dominator tree and dominance frontiers using
// the iterative Cooper-Harvey-Kennedy algorithm (spec §4.11;
// original_source/passes/dom_tree.h's compute_dom_tree).
func ComputeDomTree(fn *Function) *DomTree {
	t := &DomTree{nodes: map[*BasicBlock]*DomTreeNode{}}
	entry := fn.EntryBlock()
	if entry == nil {
		return t
	}
	t.setRoot(entry)

	rpo := reversePostorder(entry, successorsOf)
	rpoIndex := map[*BasicBlock]int{}
	for i, b := range rpo {
		rpoIndex[b] = i
	}

	preds := map[*BasicBlock][]*BasicBlock{}
	for _, b := range fn.Blocks() {
		for _, s := range successorsOf(b) {
			if s != nil {
				preds[s] = append(preds[s], b)
			}
		}
	}

	idom := map[*BasicBlock]*BasicBlock{entry: entry}
	changed := true
	for changed {
		changed = false
		for _, b := range rpo {
			if b == entry {
				continue
			}
			var newIdom *BasicBlock
			for _, p := range preds[b] {
				if idom[p] == nil {
					continue
				}
				if newIdom == nil {
					newIdom = p
					continue
				}
				newIdom = intersect(newIdom, p, idom, rpoIndex)
			}
			if newIdom != nil && idom[b] != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	for _, b := range rpo {
		if b == entry {
			continue
		}
		if d, ok := idom[b]; ok {
			parent := t.addOrGetNode(d)
			child := t.addOrGetNode(b)
			child.parent = parent
			parent.addChild(child)
		}
	}

	for _, b := range rpo {
		ps := preds[b]
		if len(ps) < 2 {
			continue
		}
		d, ok := idom[b]
		if !ok {
			continue
		}
		for _, p := range ps {
			if idom[p] == nil {
				continue
			}
			runner := p
			for runner != d {
				t.addOrGetNode(runner).addFrontier(b)
				runner = idom[runner]
			}
		}
	}

	return t
}

func intersect(a, b *BasicBlock, idom map[*BasicBlock]*BasicBlock, rpoIndex map[*BasicBlock]int) *BasicBlock {
	for a != b {
		for rpoIndex[a] > rpoIndex[b] {
			a = idom[a]
		}
		for rpoIndex[b] > rpoIndex[a] {
			b = idom[b]
		}
	}
	return a
}
