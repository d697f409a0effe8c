package statsview

// Address the server listens on.
const Address = "localhost:12600"
