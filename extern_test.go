package resonite_test

import (
	"github.com/dergwasm/go-resonite"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Host buffers", func() {
	var heap *countingHeap

	BeforeEach(func() {
		heap = &countingHeap{strings: map[uint32]string{16: "Cube"}}
	})

	It("reads the string", func() {
		buf := resonite.NewExtern(heap, 16)
		Expect(buf.IsNull()).To(BeFalse())
		s, ok := buf.Text()
		Expect(ok).To(BeTrue())
		Expect(s).To(Equal("Cube"))
	})

	It("is freed exactly once", func() {
		buf := resonite.NewExtern(heap, 16)
		buf.Release()
		buf.Release()
		Expect(heap.freed).To(Equal([]uint32{16}))

		_, ok := buf.Text()
		Expect(ok).To(BeFalse())
	})

	It("never frees a null buffer", func() {
		buf := resonite.NewExtern(heap, 0)
		Expect(buf.IsNull()).To(BeTrue())
		_, ok := buf.Text()
		Expect(ok).To(BeFalse())
		buf.Release()
		Expect(heap.freed).To(BeEmpty())
	})

	It("treats a nil buffer as null", func() {
		var buf *resonite.Extern
		Expect(buf.IsNull()).To(BeTrue())
		_, ok := buf.Text()
		Expect(ok).To(BeFalse())
		buf.Release()
	})
})
