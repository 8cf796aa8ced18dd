package xmlstream

const Version = "0.0.1"
