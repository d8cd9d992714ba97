package resolver

// knownGlobals are names a script may use without declaring them: the
// standard built-ins plus the common host objects of browsers and Node.
// References to them are still free; they just don't produce warnings.
var knownGlobals = map[string]bool{
	// value properties
	"globalThis": true, "Infinity": true, "NaN": true, "undefined": true,

	// function properties
	"eval": true, "isFinite": true, "isNaN": true, "parseFloat": true, "parseInt": true,
	"decodeURI": true, "decodeURIComponent": true, "encodeURI": true, "encodeURIComponent": true,
	"escape": true, "unescape": true,

	// constructors and namespaces
	"Object": true, "Function": true, "Array": true, "String": true, "Number": true,
	"Boolean": true, "Symbol": true, "BigInt": true, "Date": true, "RegExp": true,
	"Error": true, "EvalError": true, "RangeError": true, "ReferenceError": true,
	"SyntaxError": true, "TypeError": true, "URIError": true, "AggregateError": true,
	"Map": true, "Set": true, "WeakMap": true, "WeakSet": true, "WeakRef": true,
	"FinalizationRegistry": true, "Promise": true, "Proxy": true, "Reflect": true,
	"JSON": true, "Math": true, "Intl": true, "Atomics": true,
	"ArrayBuffer": true, "SharedArrayBuffer": true, "DataView": true,
	"Int8Array": true, "Uint8Array": true, "Uint8ClampedArray": true,
	"Int16Array": true, "Uint16Array": true, "Int32Array": true, "Uint32Array": true,
	"Float32Array": true, "Float64Array": true, "BigInt64Array": true, "BigUint64Array": true,

	// hosts
	"console": true, "window": true, "self": true, "document": true, "navigator": true,
	"location": true, "history": true, "localStorage": true, "sessionStorage": true,
	"fetch": true, "alert": true, "confirm": true, "prompt": true,
	"setTimeout": true, "clearTimeout": true, "setInterval": true, "clearInterval": true,
	"setImmediate": true, "clearImmediate": true, "queueMicrotask": true,
	"requestAnimationFrame": true, "cancelAnimationFrame": true,
	"URL": true, "URLSearchParams": true, "TextEncoder": true, "TextDecoder": true,
	"Blob": true, "FormData": true, "Headers": true, "Request": true, "Response": true,
	"XMLHttpRequest": true, "WebSocket": true, "Event": true, "CustomEvent": true,
	"EventTarget": true, "HTMLElement": true, "Element": true, "Node": true,
	"Image": true, "Worker": true, "atob": true, "btoa": true, "performance": true,
	"crypto": true, "structuredClone": true,
	"process": true, "require": true, "module": true, "exports": true, "global": true,
	"Buffer": true, "__dirname": true, "__filename": true,

	// test262 harness
	"print": true, "$262": true,
}

// IsKnownGlobal reports whether name is a well-known global.
func IsKnownGlobal(name string) bool {
	return knownGlobals[name]
}
