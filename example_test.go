package lenient_test

import (
	"fmt"

	"github.com/jacoelho/lenient"
)

func Example() {
	doc, err := lenient.ParseString(`{"a": {"b": [{"c": "d"}, {"c": 5}, ["i", "j", "k"]], "b2": []}}`)
	if err != nil {
		panic(err)
	}

	b := doc.Field("a").Field("b")
	fmt.Println(b.First().Field("c"))
	fmt.Println(b.Index(1).Field("c"))
	fmt.Println(b.Last().Last())
	fmt.Println(doc.Field("a").Field("b2").Last().Equal(nil))
	fmt.Printf("%q\n", doc.Field("a").Field("X").Field("y").String())

	for _, v := range b.Last().All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// d
	// 5
	// k
	// true
	// ""
	// i j k
}
