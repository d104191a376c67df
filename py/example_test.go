package py_test

import (
	"fmt"
	"math"

	"github.com/ardnew/pyscribe/py"
)

func ExampleProgram() {
	p := py.New()
	p.ImportAs("matplotlib.pyplot", "plt").
		DefineVariable("hello", py.MustFrom([]int{0, 1, 4})).
		WriteLine("plt.plot(hello)").
		WriteLine("plt.show()")

	fmt.Print(p)
	// Output:
	// import matplotlib.pyplot as plt
	// hello = [0,1,4,]
	// plt.plot(hello)
	// plt.show()
}

func ExampleProgram_blocks() {
	p := py.New(py.WithIndentUnit("  "))
	p.For("i in range(3)").
		If("i % 2 == 0").
		WriteLine("print(i)").
		EndBlock().
		EndBlock()

	fmt.Print(p)
	// Output:
	// for i in range(3):
	//   if i % 2 == 0:
	//     print(i)
}

func ExampleValue_Literal() {
	fmt.Println(py.Float(math.NaN()).Literal())
	fmt.Println(py.Str("hello").Literal())
	fmt.Println(py.MustFrom(map[string][]int{"there": {6, 2}}).Literal())
	// Output:
	// float('nan')
	// """hello"""
	// {"""there""":[6,2,],}
}
