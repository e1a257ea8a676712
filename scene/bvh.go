package scene

import (
	"math/rand"
	"sort"
	"time"

	"github.com/ritobanrc/firework/log"
	"github.com/ritobanrc/firework/types"
)

// bvhNode is an internal node of the hierarchy: a bounding box and two
// children. Leaves are the objects themselves, so a single-object input
// produces no nodes at all and a two-object input produces exactly one.
type bvhNode struct {
	left, right Object
	box         types.AABB
}

type bvhStats struct {
	nodes    int
	leafs    int
	maxDepth int
}

type bvhBuilder struct {
	logger log.Logger
	stats  bvhStats
}

// NewBVH builds a bounding volume hierarchy over objs by recursive median
// splits: pick the axis over which the object centers spread the most,
// sort by box minimum on that axis and halve. Every object must report a
// bounding box.
func NewBVH(objs []Object) (Object, error) {
	if len(objs) == 0 {
		return nil, ErrEmptyScene
	}
	for _, obj := range objs {
		if _, ok := obj.BoundingBox(); !ok {
			return nil, ErrUnboundedObject
		}
	}

	builder := &bvhBuilder{logger: log.New("bvh")}

	work := make([]Object, len(objs))
	copy(work, objs)

	start := time.Now()
	root := builder.partition(work, 0)
	builder.logger.Debugf(
		"BVH tree build time: %d ms, objects: %d, maxDepth: %d, nodes: %d, leafs: %d\n",
		time.Since(start).Nanoseconds()/1e6,
		len(objs), builder.stats.maxDepth, builder.stats.nodes, builder.stats.leafs,
	)
	return root, nil
}

func (b *bvhBuilder) partition(workList []Object, depth int) Object {
	if depth > b.stats.maxDepth {
		b.stats.maxDepth = depth
	}

	switch len(workList) {
	case 1:
		b.stats.leafs++
		return workList[0]
	case 2:
		b.stats.nodes++
		b.stats.leafs += 2
		return newBVHNode(workList[0], workList[1])
	}

	axis := spreadAxis(workList)
	sort.Slice(workList, func(i, j int) bool {
		bi, _ := workList[i].BoundingBox()
		bj, _ := workList[j].BoundingBox()
		return bi.Min[axis] < bj.Min[axis]
	})

	mid := len(workList) / 2
	b.stats.nodes++
	return newBVHNode(
		b.partition(workList[:mid], depth+1),
		b.partition(workList[mid:], depth+1),
	)
}

func newBVHNode(left, right Object) *bvhNode {
	lb, _ := left.BoundingBox()
	rb, _ := right.BoundingBox()
	return &bvhNode{left: left, right: right, box: types.Union(lb, rb)}
}

// spreadAxis returns the axis along which the object box centers span the
// widest interval.
func spreadAxis(objs []Object) int {
	first, _ := objs[0].BoundingBox()
	min := first.Center()
	max := min
	for _, obj := range objs[1:] {
		box, _ := obj.BoundingBox()
		c := box.Center()
		min = types.MinVec3(min, c)
		max = types.MaxVec3(max, c)
	}

	spread := max.Sub(min)
	axis := 0
	if spread[1] > spread[axis] {
		axis = 1
	}
	if spread[2] > spread[axis] {
		axis = 2
	}
	return axis
}

func (n *bvhNode) Hit(r types.Ray, tMin, tMax float32, rng *rand.Rand) (HitRecord, bool) {
	if !n.box.Hit(r, tMin, tMax) {
		return HitRecord{}, false
	}

	// Child boxes may overlap, so both sides are always tested. A hit on
	// the left tightens the interval searched on the right.
	rec, hitLeft := n.left.Hit(r, tMin, tMax, rng)
	if hitLeft {
		tMax = rec.T
	}
	if recRight, hitRight := n.right.Hit(r, tMin, tMax, rng); hitRight {
		return recRight, true
	}
	return rec, hitLeft
}

func (n *bvhNode) BoundingBox() (types.AABB, bool) {
	return n.box, true
}
