package jung

// Version is the interpreter version reported by `jung --version`.
const Version = "0.1.0"
