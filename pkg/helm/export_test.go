package helm

var (
	MergeMaps    = mergeMaps
	TemplateArgs = templateArgs
	WriteValues  = writeValues
)
