package prompt

// LogoText is printed when CLI is started without command.
const LogoText = `
  _ __ ___  (_)_ __ ___   ___  ___(_)___
 | '_ ' _ \ | | '_ ' _ \ / _ \/ __| / __|
 | | | | | || | | | | | |  __/\__ \ \__ \
 |_| |_| |_||_|_| |_| |_|\___||___/_|___/

`
