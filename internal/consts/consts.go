package consts

// Netlist directives
const (
	TITLE   = ".title"
	INCLUDE = ".include"
	GLOBAL  = ".global"
	PARAM   = ".param"
	MODEL   = ".model"
	SUBCKT  = ".subckt"
	ENDS    = ".ends"
	END     = ".end"
)

const GROUND = "0" // Reference node name
