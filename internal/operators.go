package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opMul operator = "mul"
	opDiv operator = "div"
)

type operatorApply func(left, right number) (number, error)

var binaryOperators = map[tokenType]operator{
	tkPlus:  opAdd,
	tkMinus: opSub,
	tkStar:  opMul,
	tkSlash: opDiv,
}
